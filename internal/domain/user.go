package domain

import (
	"fmt"
	"strings"
	"time"
)

type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanPro        PlanType = "pro"
	PlanEnterprise PlanType = "enterprise"
)

type Goal string

const (
	GoalConversions Goal = "conversions"
	GoalROAS        Goal = "roas"
	GoalTraffic     Goal = "traffic"
	GoalRevenue     Goal = "revenue"
)

func ParseGoal(raw string) (Goal, error) {
	goal := Goal(strings.ToLower(strings.TrimSpace(raw)))
	switch goal {
	case GoalConversions, GoalROAS, GoalTraffic, GoalRevenue:
		return goal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGoal, raw)
	}
}

type User struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	PlanType    PlanType   `json:"plan_type"`
	IsPremium   bool       `json:"is_premium"`
	PrimaryGoal Goal       `json:"primary_goal,omitempty"`
	SignupDate  time.Time  `json:"signup_date"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// Credentials is the bearer pair of an authenticated session.
type Credentials struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (c Credentials) Empty() bool {
	return strings.TrimSpace(c.Access) == "" && strings.TrimSpace(c.Refresh) == ""
}

type LoginResult struct {
	User      User        `json:"user"`
	Tokens    Credentials `json:"tokens"`
	IsNewUser bool        `json:"is_new_user,omitempty"`
}

type Registration struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (r Registration) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if r.Password != r.Password2 {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
