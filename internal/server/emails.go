package server

import "github.com/mailswipe/mailswipe/internal/backend"

// testEmails is the canned development feed: five emails with an event block
// (calendar candidates) and five without (reminder candidates).
var testEmails = []backend.Email{
	{
		ID:      "test-1",
		From:    "team@company.com",
		Subject: "Team Meeting - Q4 Planning",
		Date:    "2024-11-25T09:00:00Z",
		Preview: "Join us for our quarterly planning session.\n\nEvent Time: November 25, 2024 at 2:00 PM - 3:30 PM\nLocation: Conference Room A\n\nAgenda: Review Q3 results and plan Q4 objectives.",
	},
	{
		ID:      "test-2",
		From:    "hr@company.com",
		Subject: "Annual Review Schedule",
		Date:    "2024-11-23T08:30:00Z",
		Preview: "Your annual performance review has been scheduled.\n\nEvent Time: November 26, 2024 at 10:00 AM - 11:00 AM\nLocation: HR Office, Building 2\n\nPlease prepare your self-assessment before the meeting.",
	},
	{
		ID:      "test-3",
		From:    "dentist@healthclinic.com",
		Subject: "Dental Appointment Confirmation",
		Date:    "2024-11-22T14:00:00Z",
		Preview: "This is a confirmation for your upcoming dental appointment.\n\nEvent Time: November 27, 2024 at 9:30 AM - 10:30 AM\nLocation: HealthClinic Dental, 123 Main St\n\nPlease arrive 10 minutes early.",
	},
	{
		ID:      "test-4",
		From:    "events@university.edu",
		Subject: "Guest Lecture: AI and the Future",
		Date:    "2024-11-24T11:00:00Z",
		Preview: "Distinguished Professor Jane Smith will be speaking about artificial intelligence.\n\nEvent Time: November 28, 2024 at 4:00 PM - 5:30 PM\nLocation: Science Building, Auditorium 101\n\nRefreshments will be served.",
	},
	{
		ID:      "test-5",
		From:    "fitness@gym.com",
		Subject: "Personal Training Session",
		Date:    "2024-11-23T07:00:00Z",
		Preview: "Your personal training session is confirmed!\n\nEvent Time: November 29, 2024 at 6:00 AM - 7:00 AM\nLocation: Downtown Fitness Center\n\nBring water and a towel. See you there!",
	},
	{
		ID:      "test-6",
		From:    "boss@company.com",
		Subject: "Action Required: Complete Expense Report",
		Date:    "2024-11-22T16:30:00Z",
		Preview: "Please submit your October expense report by end of week. Include all receipts and categorize expenses properly. Let me know if you have any questions.",
	},
	{
		ID:      "test-7",
		From:    "library@university.edu",
		Subject: "Book Due Soon",
		Date:    "2024-11-23T10:00:00Z",
		Preview: "The following books are due soon:\n- 'Introduction to Algorithms'\n- 'Clean Code'\n\nRenew online or return to avoid late fees.",
	},
	{
		ID:      "test-8",
		From:    "netflix@streaming.com",
		Subject: "New Episodes Available",
		Date:    "2024-11-24T12:00:00Z",
		Preview: "Season 2 of your favorite show is now available! Continue watching where you left off. Don't forget to finish the series before it leaves our platform next month.",
	},
	{
		ID:      "test-9",
		From:    "mom@family.com",
		Subject: "Don't Forget",
		Date:    "2024-11-22T18:00:00Z",
		Preview: "Remember to call Grandma this weekend for her birthday! Also, we need to plan the family Thanksgiving dinner. Let me know your availability.",
	},
	{
		ID:      "test-10",
		From:    "store@shopping.com",
		Subject: "Your Order Needs Action",
		Date:    "2024-11-23T13:45:00Z",
		Preview: "We need your confirmation to proceed with your recent order. Please review the items in your cart and confirm your shipping address. Order #12345",
	},
}
