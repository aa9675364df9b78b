package services

import (
	"github.com/blogem/enterprise-api/repositories"
)

// Services holds all service instances
type Services struct {
	Enterprise EnterpriseService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Enterprise: NewEnterpriseService(repos.Enterprise),
	}
}
