package repo

import (
	applicationrepo "github.com/GlebRadaev/loanapp/internal/repo/application-repo"
	"github.com/GlebRadaev/loanapp/internal/service/loanservice"
)

type Repositories struct {
	ApplicationRepo loanservice.Repo
}

func New() *Repositories {
	return &Repositories{
		ApplicationRepo: applicationrepo.New(),
	}
}
