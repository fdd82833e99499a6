package model

type EventType struct {
	TypeID string `firestore:"typeid,omitempty" json:"id"`
	Name   string `firestore:"name,omitempty" json:"name"`
	Color  string `firestore:"color,omitempty" json:"color"`
	Icon   string `firestore:"icon,omitempty" json:"icon"`
	Active *bool  `firestore:"active" json:"active,omitempty"` // nil counts as active
}

type EventCategory struct {
	CategoryID string `firestore:"categoryid,omitempty" json:"id"`
	Name       string `firestore:"name,omitempty" json:"name"`
	Color      string `firestore:"color,omitempty" json:"color"`
	Active     *bool  `firestore:"active" json:"active,omitempty"`
}

type RepeatOption struct {
	OptionID string `firestore:"optionid,omitempty" json:"id"`
	Name     string `firestore:"name,omitempty" json:"name"`
	Value    string `firestore:"value,omitempty" json:"value"`
	Active   *bool  `firestore:"active" json:"active,omitempty"`
}

type GeneralSettings struct {
	DefaultView     string `firestore:"defaultview,omitempty" json:"defaultView"`
	WeekStartsOn    string `firestore:"weekstartson,omitempty" json:"weekStartsOn"` // "sunday" or "monday"
	TimeFormat      string `firestore:"timeformat,omitempty" json:"timeFormat"`
	DateFormat      string `firestore:"dateformat,omitempty" json:"dateFormat"`
	DefaultReminder string `firestore:"defaultreminder,omitempty" json:"defaultReminder"`
	Theme           string `firestore:"theme,omitempty" json:"theme"`
}

func (t EventType) IsActive() bool     { return t.Active == nil || *t.Active }
func (c EventCategory) IsActive() bool { return c.Active == nil || *c.Active }
func (o RepeatOption) IsActive() bool  { return o.Active == nil || *o.Active }

// DefaultEventTypes are seeded into a user's settings document on first read.
func DefaultEventTypes() []EventType {
	return []EventType{
		{TypeID: "1", Name: "Meeting", Color: "#3b82f6", Icon: "users"},
		{TypeID: "2", Name: "Task", Color: "#10b981", Icon: "check-circle"},
		{TypeID: "3", Name: "Appointment", Color: "#f59e0b", Icon: "calendar"},
		{TypeID: "4", Name: "Reminder", Color: "#8b5cf6", Icon: "bell"},
		{TypeID: "5", Name: "Personal", Color: "#ec4899", Icon: "heart"},
	}
}

func DefaultEventCategories() []EventCategory {
	return []EventCategory{
		{CategoryID: "1", Name: "Work", Color: "#3b82f6"},
		{CategoryID: "2", Name: "Personal", Color: "#10b981"},
		{CategoryID: "3", Name: "Health", Color: "#f59e0b"},
		{CategoryID: "4", Name: "Education", Color: "#8b5cf6"},
		{CategoryID: "5", Name: "Family", Color: "#ec4899"},
	}
}

func DefaultRepeatOptions() []RepeatOption {
	return []RepeatOption{
		{OptionID: "1", Name: "Does not repeat", Value: "none"},
		{OptionID: "2", Name: "Daily", Value: "daily"},
		{OptionID: "3", Name: "Weekly", Value: "weekly"},
		{OptionID: "4", Name: "Monthly", Value: "monthly"},
		{OptionID: "5", Name: "Yearly", Value: "yearly"},
	}
}

func DefaultGeneralSettings() GeneralSettings {
	return GeneralSettings{
		DefaultView:     "month",
		WeekStartsOn:    "sunday",
		TimeFormat:      "24h",
		DateFormat:      "dd/mm/yyyy",
		DefaultReminder: "15min",
		Theme:           "light",
	}
}
