package models

import (
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/uptrace/bun"
)

// ReadingPlan is the user's state for one started plan. completed_days only
// grows, and current_day never decreases.
type ReadingPlan struct {
	bun.BaseModel `bun:"table:reading_plans,alias:rp"`

	PlanID               string    `bun:"plan_id,pk" json:"plan_id"`
	StartedAt            time.Time `json:"started_at"`
	CompletedDays        string    `bun:",nullzero" json:"-"`
	CompletedDaysParsed  []int     `bun:"-" json:"completed_days"`
	CurrentDay           int       `json:"current_day"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	NotificationTime     *string   `json:"notification_time,omitempty"`
}

// MarshalCompletedDays serializes CompletedDaysParsed into the stored column.
func (p *ReadingPlan) MarshalCompletedDays() error {
	days := p.CompletedDaysParsed
	if days == nil {
		days = []int{}
	}
	data, err := json.Marshal(days)
	if err != nil {
		return errors.WithStack(err)
	}
	p.CompletedDays = string(data)
	return nil
}

// UnmarshalCompletedDays parses the stored column into CompletedDaysParsed.
func (p *ReadingPlan) UnmarshalCompletedDays() error {
	p.CompletedDaysParsed = []int{}
	if p.CompletedDays == "" {
		return nil
	}
	err := json.Unmarshal([]byte(p.CompletedDays), &p.CompletedDaysParsed)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (p *ReadingPlan) HasCompletedDay(day int) bool {
	for _, d := range p.CompletedDaysParsed {
		if d == day {
			return true
		}
	}
	return false
}
