package service

import (
	"github.com/kaanyalova/draft-advisor/internal/config"
	"github.com/kaanyalova/draft-advisor/internal/knowledge"
	"github.com/kaanyalova/draft-advisor/internal/meta"
	"github.com/kaanyalova/draft-advisor/internal/repository"
)

type Services struct {
	Advisor  *AdvisorService
	Champion *ChampionService
}

func NewServices(repos *repository.Repositories, kb *knowledge.Base, provider meta.Provider, cfg *config.Config) *Services {
	return &Services{
		Advisor:  NewAdvisorService(kb, provider),
		Champion: NewChampionService(repos.Champion, repos.MetaStats, cfg),
	}
}
