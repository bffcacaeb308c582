package readingplans

type StartPlanPayload struct {
	PlanID string `json:"plan_id" validate:"required,max=128"`
}

type CompleteDayPayload struct {
	Day int `json:"day" validate:"required,min=1,max=3650"`
}

type UpdateNotificationsPayload struct {
	Enabled bool    `json:"enabled"`
	Time    *string `json:"time" validate:"omitempty,notification_time"`
}
