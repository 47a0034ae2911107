package domain

import "cateringbot/internal/domain/entities"

// draftField describes one step of the creation wizard: the field it fills
// and the message key of the question asked for it. The wizard walks this
// table in order; it is the single source of truth for field sequence.
type draftField struct {
	Name      string
	PromptKey string
	Get       func(*entities.Draft) string
	Set       func(*entities.Draft, string)
}

var draftFields = []draftField{
	{"clientName", "PromptClientName",
		func(d *entities.Draft) string { return d.ClientName },
		func(d *entities.Draft, v string) { d.ClientName = v }},
	{"companyName", "PromptCompanyName",
		func(d *entities.Draft) string { return d.CompanyName },
		func(d *entities.Draft, v string) { d.CompanyName = v }},
	{"tinNumber", "PromptTINNumber",
		func(d *entities.Draft) string { return d.TINNumber },
		func(d *entities.Draft, v string) { d.TINNumber = v }},
	{"contactNumber", "PromptContactNumber",
		func(d *entities.Draft) string { return d.ContactNumber },
		func(d *entities.Draft, v string) { d.ContactNumber = v }},
	{"eventName", "PromptEventName",
		func(d *entities.Draft) string { return d.EventName },
		func(d *entities.Draft, v string) { d.EventName = v }},
	{"eventDate", "PromptEventDate",
		func(d *entities.Draft) string { return d.EventDate },
		func(d *entities.Draft, v string) { d.EventDate = v }},
	{"eventTime", "PromptEventTime",
		func(d *entities.Draft) string { return d.EventTime },
		func(d *entities.Draft, v string) { d.EventTime = v }},
	{"participants", "PromptParticipants",
		func(d *entities.Draft) string { return d.Participants },
		func(d *entities.Draft, v string) { d.Participants = v }},
	{"location", "PromptLocation",
		func(d *entities.Draft) string { return d.Location },
		func(d *entities.Draft, v string) { d.Location = v }},
	{"duration", "PromptDuration",
		func(d *entities.Draft) string { return d.Duration },
		func(d *entities.Draft, v string) { d.Duration = v }},
	{"services", "PromptServices",
		func(d *entities.Draft) string { return d.Services },
		func(d *entities.Draft, v string) { d.Services = v }},
}

// nextEmptyField returns the first unfilled wizard field.
func nextEmptyField(d *entities.Draft) (draftField, bool) {
	for _, f := range draftFields {
		if f.Get(d) == "" {
			return f, true
		}
	}
	return draftField{}, false
}
