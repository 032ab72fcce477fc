package directory

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Service exposes the read-only reference directories consumed by the
// intake form, plus the mobile-number sign-in lookup.
type Service struct {
	DB *gorm.DB
}

type EmployeeRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type CodeRef struct {
	ID    uint64 `json:"id"`
	Label string `json:"label"`
}

func (s *Service) Employees(ctx context.Context) ([]EmployeeRef, error) {
	var rows []Employee
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]EmployeeRef, 0, len(rows))
	for _, e := range rows {
		out = append(out, EmployeeRef{ID: e.ID, Name: e.Name})
	}
	return out, nil
}

func (s *Service) Codes(ctx context.Context) ([]CodeRef, error) {
	var rows []Code
	if err := s.DB.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]CodeRef, 0, len(rows))
	for _, c := range rows {
		out = append(out, CodeRef{ID: c.ID, Label: c.Label()})
	}
	return out, nil
}

// FindByMobile resolves a mobile number to its user. This is the whole
// sign-in flow: no password, no token.
func (s *Service) FindByMobile(ctx context.Context, mobile string) (*User, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, ErrNotFound
	}
	var u User
	if err := s.DB.WithContext(ctx).Where("mobile_no = ?", mobile).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
