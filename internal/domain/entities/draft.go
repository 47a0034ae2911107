package entities

// Draft is an in-progress catering event collected by the creation wizard.
// Fields are filled strictly in wizard order, so the populated fields always
// form a contiguous prefix of the struct. The JSON tags are the wire encoding
// stored inside the conversation state token.
type Draft struct {
	ClientName    string `json:"clientName,omitempty"`
	CompanyName   string `json:"companyName,omitempty"`
	TINNumber     string `json:"tinNumber,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	EventName     string `json:"eventName,omitempty"`
	EventDate     string `json:"eventDate,omitempty"`
	EventTime     string `json:"eventTime,omitempty"`
	Participants  string `json:"participants,omitempty"`
	Location      string `json:"location,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Services      string `json:"services,omitempty"`
}
