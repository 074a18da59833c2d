package model

const (
	TemplateNewRequest                      = "newRequest"
	TemplateAssignedToStaff                 = "assignedToStaff"
	TemplateAssignmentNotification          = "assignmentNotification"
	TemplateRequesterAssignmentNotification = "requesterAssignmentNotification"
	TemplateCompletionToRequester           = "completionToRequester"
	TemplateCompletionToProject             = "completionToProject"
	TemplateVerificationNotification        = "verificationNotification"
	TemplateVerificationToRequester         = "verificationToRequester"
	TemplateNewRemarkNotification           = "newRemarkNotification"
	TemplateBookingAssignedToStaff          = "bookingAssignedToStaff"
	TemplateTestMail                        = "testMail"
)

// Templates lists every email template shipped with the service.
var Templates = []string{
	TemplateNewRequest,
	TemplateAssignedToStaff,
	TemplateAssignmentNotification,
	TemplateRequesterAssignmentNotification,
	TemplateCompletionToRequester,
	TemplateCompletionToProject,
	TemplateVerificationNotification,
	TemplateVerificationToRequester,
	TemplateNewRemarkNotification,
	TemplateBookingAssignedToStaff,
	TemplateTestMail,
}

type RequestInfo struct {
	ID               string
	Username         string
	Department       string
	Description      string
	IsNewRequirement bool
	Status           string
	AssignedTo       string
	CompletedAt      string
	VerifiedBy       string
}

type StaffInfo struct {
	Name  string
	Email string
}

type RemarkInfo struct {
	Text      string
	EnteredBy string
	Date      string
}

type BookingInfo struct {
	ID         string
	Username   string
	Department string
	RoomType   string
	Date       string
	From       string
	To         string
	Purpose    string
}

// Data is the template context. Now is filled with the render time when empty.
type Data struct {
	Request RequestInfo
	Staff   StaffInfo
	Remark  RemarkInfo
	Booking BookingInfo
	Now     string
}

// Email is a notification to render with Template and deliver to To and Cc.
type Email struct {
	Template string
	To       []string
	Cc       []string
	Data     Data
}
