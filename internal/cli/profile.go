package cli

import "github.com/alexanderramin/timesheet/internal/domain"

func profileName(p *domain.Profile) string {
	if p == nil {
		return ""
	}
	return p.EmployeeName
}

func profileClient(p *domain.Profile) string {
	if p == nil {
		return ""
	}
	return p.ClientName
}
