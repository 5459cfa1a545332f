package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/account-service/internal/model"
)

const dateLayout = "2006-01-02"

// UserView is the public JSON projection of an identity. It has no secret fields.
type UserView struct {
	ID                   uuid.UUID                  `json:"id"`
	Email                string                     `json:"email"`
	Name                 string                     `json:"name,omitempty"`
	IsAdmin              bool                       `json:"isAdmin"`
	Gender               model.Gender               `json:"gender"`
	Birthday             string                     `json:"birthday,omitempty"`
	Location             LocationView               `json:"location"`
	Phone                string                     `json:"phone,omitempty"`
	Skills               []string                   `json:"skills"`
	TwoFactor            TwoFactorView              `json:"twoFactor"`
	NotificationSettings model.NotificationSettings `json:"notificationSettings"`
	CreatedAt            time.Time                  `json:"createdAt"`
	UpdatedAt            time.Time                  `json:"updatedAt"`
}

type LocationView struct {
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

type TwoFactorView struct {
	Enabled  bool                  `json:"enabled"`
	Method   model.TwoFactorMethod `json:"method,omitempty"`
	LastUsed *time.Time            `json:"lastUsed,omitempty"`
}

func newUserView(u model.Identity) UserView {
	v := UserView{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
		Gender:  u.Gender,
		Location: LocationView{
			Country: u.Location.Country,
			City:    u.Location.City,
			Address: u.Location.Address,
		},
		Phone:  u.Phone,
		Skills: u.Skills,
		TwoFactor: TwoFactorView{
			Enabled:  u.TwoFactor.Enabled,
			Method:   u.TwoFactor.Method,
			LastUsed: u.TwoFactor.LastUsed,
		},
		NotificationSettings: u.Notifications,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
	if u.Birthday != nil {
		v.Birthday = u.Birthday.Format(dateLayout)
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	return v
}

func newUserViews(users []model.Identity) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	return views
}
