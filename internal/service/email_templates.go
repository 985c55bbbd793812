package service

import (
	"fmt"

	"github.com/lumedental/clinic-api/internal/domain/entity"
)

// emailContent is one educational email template rendered for a patient.
type emailContent struct {
	Subject string
	HTML    string
	Text    string
}

// emailContentForTreatment renders the educational email for the booked
// treatment. Unrecognized treatment types fall back to the exam template.
func emailContentForTreatment(treatment entity.TreatmentType, name, date, timeOfDay string) emailContent {
	header := `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`
	intro := func(title, what string) string {
		return fmt.Sprintf(`%s<h2 style="color: #2563eb;">%s</h2><p>Hi %s,</p><p>Your %s is scheduled for <strong>%s</strong> at <strong>%s</strong>.</p>`,
			header, title, name, what, date, timeOfDay)
	}
	footer := `<p>Best regards,<br>Lume Dental Team</p></div>`
	textFooter := "\n\nBest regards,\nLume Dental Team"

	switch treatment {
	case entity.TreatmentRootCanal:
		return emailContent{
			Subject: "Your Root Canal Appointment - What to Expect",
			HTML: intro("Root Canal Preparation Guide", "root canal appointment") +
				`<h3 style="color: #1e40af;">What to Expect:</h3><ul>` +
				`<li>The procedure typically takes 60-90 minutes</li>` +
				`<li>Local anesthesia will be used to ensure comfort</li>` +
				`<li>You may experience mild discomfort for 24-48 hours after</li></ul>` +
				`<h3 style="color: #1e40af;">Before Your Appointment:</h3><ul>` +
				`<li>Take any prescribed medications as directed</li>` +
				`<li>Eat a light meal before your appointment</li>` +
				`<li>Avoid alcohol 24 hours before the procedure</li></ul>` +
				`<h3 style="color: #1e40af;">After Care Tips:</h3><ul>` +
				`<li>Avoid chewing on the treated side for 24 hours</li>` +
				`<li>Take over-the-counter pain relievers as needed</li>` +
				`<li>Contact us immediately if you experience severe pain or swelling</li></ul>` + footer,
			Text: fmt.Sprintf("Root Canal Preparation Guide\n\nHi %s,\n\nYour root canal appointment is scheduled for %s at %s.\n\n"+
				"What to Expect:\n- The procedure typically takes 60-90 minutes\n- Local anesthesia will be used to ensure comfort\n- You may experience mild discomfort for 24-48 hours after\n\n"+
				"Before Your Appointment:\n- Take any prescribed medications as directed\n- Eat a light meal before your appointment\n- Avoid alcohol 24 hours before the procedure\n\n"+
				"After Care Tips:\n- Avoid chewing on the treated side for 24 hours\n- Take over-the-counter pain relievers as needed\n- Contact us immediately if you experience severe pain or swelling"+textFooter,
				name, date, timeOfDay),
		}

	case entity.TreatmentCleaning:
		return emailContent{
			Subject: "Your Dental Cleaning Appointment - Oral Hygiene Tips",
			HTML: intro("Dental Cleaning - Preparation & Benefits", "dental cleaning appointment") +
				`<h3 style="color: #1e40af;">Benefits of Regular Cleanings:</h3><ul>` +
				`<li>Prevents cavities and gum disease</li>` +
				`<li>Removes plaque and tartar buildup</li>` +
				`<li>Freshens breath and brightens smile</li>` +
				`<li>Early detection of dental issues</li></ul>` +
				`<h3 style="color: #1e40af;">Oral Hygiene Tips:</h3><ul>` +
				`<li>Brush twice daily for 2 minutes</li>` +
				`<li>Floss at least once a day</li>` +
				`<li>Use fluoride toothpaste</li>` +
				`<li>Replace your toothbrush every 3-4 months</li></ul>` + footer,
			Text: fmt.Sprintf("Dental Cleaning - Preparation & Benefits\n\nHi %s,\n\nYour dental cleaning appointment is scheduled for %s at %s.\n\n"+
				"Benefits of Regular Cleanings:\n- Prevents cavities and gum disease\n- Removes plaque and tartar buildup\n- Freshens breath and brightens smile\n- Early detection of dental issues\n\n"+
				"Oral Hygiene Tips:\n- Brush twice daily for 2 minutes\n- Floss at least once a day\n- Use fluoride toothpaste\n- Replace your toothbrush every 3-4 months"+textFooter,
				name, date, timeOfDay),
		}

	case entity.TreatmentCosmetic:
		return emailContent{
			Subject: "Your Cosmetic Dentistry Appointment",
			HTML: intro("Cosmetic Dentistry - Your Journey to a Perfect Smile", "cosmetic dentistry appointment") +
				`<h3 style="color: #1e40af;">What to Expect:</h3><ul>` +
				`<li>Comprehensive smile assessment</li>` +
				`<li>Discussion of your aesthetic goals</li>` +
				`<li>Treatment options tailored to you</li>` +
				`<li>Digital smile preview (if applicable)</li></ul>` + footer,
			Text: fmt.Sprintf("Cosmetic Dentistry - Your Journey to a Perfect Smile\n\nHi %s,\n\nYour cosmetic dentistry appointment is scheduled for %s at %s.\n\n"+
				"What to Expect:\n- Comprehensive smile assessment\n- Discussion of your aesthetic goals\n- Treatment options tailored to you\n- Digital smile preview (if applicable)"+textFooter,
				name, date, timeOfDay),
		}

	case entity.TreatmentEmergency:
		return emailContent{
			Subject: "Your Emergency Dental Appointment",
			HTML: fmt.Sprintf(`%s<h2 style="color: #dc2626;">Emergency Dental Care</h2><p>Hi %s,</p><p>Your emergency appointment is scheduled for <strong>%s</strong> at <strong>%s</strong>.</p>`,
				header, name, date, timeOfDay) +
				`<h3 style="color: #991b1b;">Before You Arrive:</h3><ul>` +
				`<li>Rinse with warm salt water if experiencing pain</li>` +
				`<li>Apply cold compress to reduce swelling</li>` +
				`<li>Take over-the-counter pain relief as directed</li>` +
				`<li>Bring any broken tooth fragments if applicable</li></ul>` + footer,
			Text: fmt.Sprintf("Emergency Dental Care\n\nHi %s,\n\nYour emergency appointment is scheduled for %s at %s.\n\n"+
				"Before You Arrive:\n- Rinse with warm salt water if experiencing pain\n- Apply cold compress to reduce swelling\n- Take over-the-counter pain relief as directed\n- Bring any broken tooth fragments if applicable"+textFooter,
				name, date, timeOfDay),
		}

	case entity.TreatmentOrthodontics:
		return emailContent{
			Subject: "Your Orthodontic Consultation",
			HTML: intro("Orthodontic Consultation", "orthodontic consultation") +
				`<h3 style="color: #1e40af;">What to Expect:</h3><ul>` +
				`<li>Comprehensive bite and alignment assessment</li>` +
				`<li>Discussion of treatment options (braces, aligners, etc.)</li>` +
				`<li>Timeline and cost estimates</li></ul>` + footer,
			Text: fmt.Sprintf("Orthodontic Consultation\n\nHi %s,\n\nYour orthodontic consultation is scheduled for %s at %s.\n\n"+
				"What to Expect:\n- Comprehensive bite and alignment assessment\n- Discussion of treatment options (braces, aligners, etc.)\n- Timeline and cost estimates"+textFooter,
				name, date, timeOfDay),
		}

	case entity.TreatmentExtraction:
		return emailContent{
			Subject: "Your Tooth Extraction Appointment - Preparation Guide",
			HTML: intro("Tooth Extraction - What to Expect", "tooth extraction") +
				`<h3 style="color: #1e40af;">Before Your Appointment:</h3><ul>` +
				`<li>Eat a light meal beforehand</li>` +
				`<li>Avoid smoking 12 hours before</li>` +
				`<li>Arrange for someone to drive you home</li></ul>` +
				`<h3 style="color: #1e40af;">After Care:</h3><ul>` +
				`<li>Bite on gauze for 30-45 minutes</li>` +
				`<li>Avoid rinsing or spitting for 24 hours</li>` +
				`<li>Stick to soft foods for a few days</li>` +
				`<li>No straws - they can dislodge the clot</li></ul>` + footer,
			Text: fmt.Sprintf("Tooth Extraction - What to Expect\n\nHi %s,\n\nYour tooth extraction is scheduled for %s at %s.\n\n"+
				"Before Your Appointment:\n- Eat a light meal beforehand\n- Avoid smoking 12 hours before\n- Arrange for someone to drive you home\n\n"+
				"After Care:\n- Bite on gauze for 30-45 minutes\n- Avoid rinsing or spitting for 24 hours\n- Stick to soft foods for a few days\n- No straws - they can dislodge the clot"+textFooter,
				name, date, timeOfDay),
		}

	default:
		// exam template, also the fallback
		return emailContent{
			Subject: "Your Dental Exam Appointment",
			HTML: intro("Comprehensive Dental Exam", "dental exam") +
				`<h3 style="color: #1e40af;">What We'll Check:</h3><ul>` +
				`<li>Overall oral health assessment</li>` +
				`<li>Cavity detection</li>` +
				`<li>Gum health evaluation</li>` +
				`<li>Oral cancer screening</li>` +
				`<li>X-rays (if needed)</li></ul>` + footer,
			Text: fmt.Sprintf("Comprehensive Dental Exam\n\nHi %s,\n\nYour dental exam is scheduled for %s at %s.\n\n"+
				"What We'll Check:\n- Overall oral health assessment\n- Cavity detection\n- Gum health evaluation\n- Oral cancer screening\n- X-rays (if needed)"+textFooter,
				name, date, timeOfDay),
		}
	}
}
