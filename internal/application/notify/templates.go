package notify

import "fmt"

// Subject is fixed for every provisioning email.
const Subject = "Welcome to MAX Aspire!"

func welcomeBody(firstName string) string {
	return fmt.Sprintf("Salaam %s!\r\n"+
		"\r\n\n"+
		"Congratulations for successfully signing up on MAX Aspire! We are thrilled to have you on board and can’t wait to make a positive difference in your professional career."+
		"At MAX, we are devoted to elevating the Muslim brand by serving aspiring professionals, such as yourself! The Aspire platform aims to bring together a powerful network to collaborate for a more rewarding career journey and help Muslims fulfill their true potential. More than 200 Senior Executives, including CEOs, Partners, Managing Directors and VPs, are already on board! You are now a part of this circle too!\r\n"+
		"\r\n\n"+
		"Check out the cool features we currently offer:\r\n"+
		"1. Resume Bank\r\n"+
		"2. Exclusive Coffee Chats\r\n"+
		"3. Hire MAX Professional Talent\r\n"+
		"4. Mock Interviews\r\n"+
		"\r\n\n"+
		"We sincerely hope you make the most of these services and help spread the word. As the Prophet said: 'Every Act of goodness is charity.' (Sahih Muslim, Hadith 496)\r\n"+
		"You can now access your account at https://aspire.maxgala.com\r\n"+
		"Should you need any assistance or have any questions or comments about your membership or benefits, please feel free to contact us at aspire@maxgala.com\r\n"+
		"\r\n\n"+
		"Sincerely,\r\n"+
		"Aazar Zafar\r\n"+
		"Founder and Head Cheerleader\r\n"+
		"MAX Aspire",
		firstName)
}

func mentorPendingBody(firstName string) string {
	return fmt.Sprintf("Salaam %s!\r\n"+
		"\r\n\n"+
		"Thank you for signing up as a Senior Executive on MAX Aspire. "+
		"Our team is working on your request and will send over an update within 48 to 72 hours.\r\n"+
		"We really appreciate your time and commitment to helping our Aspiring Professionals. "+
		"Please don’t hesitate to reach out to aspire@maxgala.com if you have any questions.\r\n"+
		"\r\n\n"+
		"Best,\r\n"+
		"MAX Aspire Team",
		firstName)
}
