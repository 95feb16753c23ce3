package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-admin/brackets"
	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/repositories"
	"github.com/Dosada05/league-admin/storage"
)

type StandingsService interface {
	// Standings is the competition table over the eligible pool, counting
	// every finished match of the competition.
	Standings(ctx context.Context, competitionID int) ([]models.Standing, error)
	// Ranking returns team ids best first.
	Ranking(ctx context.Context, competitionID int) ([]int, error)
}

type standingsService struct {
	competitionRepo repositories.CompetitionRepository
	matchRepo       repositories.MatchRepository
	uploader        storage.FileUploader
}

func NewStandingsService(
	competitionRepo repositories.CompetitionRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) StandingsService {
	return &standingsService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		uploader:        uploader,
	}
}

func (s *standingsService) Standings(ctx context.Context, competitionID int) ([]models.Standing, error) {
	pool, matches, err := s.snapshot(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	populateTeamLogoURLs(pool, s.uploader)
	byID := make(map[int]*models.Team, len(pool))
	for i := range pool {
		byID[pool[i].ID] = &pool[i]
	}

	standings := brackets.ComputeStandings(teamIDs(pool), matches)
	for i := range standings {
		standings[i].Team = byID[standings[i].TeamID]
	}
	return standings, nil
}

func (s *standingsService) Ranking(ctx context.Context, competitionID int) ([]int, error) {
	pool, matches, err := s.snapshot(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	return brackets.Rank(teamIDs(pool), matches), nil
}

func (s *standingsService) snapshot(ctx context.Context, competitionID int) ([]models.Team, []models.Match, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, nil, fmt.Errorf("failed to get competition %d: %w", competitionID, err)
	}

	var (
		pool    []models.Team
		matches []models.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teams, err := s.competitionRepo.ListTeams(gctx, competitionID)
		if err != nil {
			return fmt.Errorf("failed to list teams of competition %d: %w", competitionID, err)
		}
		pool = teams
		return nil
	})
	g.Go(func() error {
		list, err := s.matchRepo.ListByCompetition(gctx, competitionID)
		if err != nil {
			return fmt.Errorf("failed to list matches of competition %d: %w", competitionID, err)
		}
		matches = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pool, matches, nil
}
