package services

import (
	"strings"
	"time"

	"github.com/Dosada05/league-admin/models"
	"github.com/Dosada05/league-admin/storage"
)

func isValidCompetitionTransition(current, next models.CompetitionStatus) bool {
	if current == next {
		return true
	}
	allowedTransitions := map[models.CompetitionStatus][]models.CompetitionStatus{
		models.CompetitionStatusScheduled: {models.CompetitionStatusActive, models.CompetitionStatusClosed},
		models.CompetitionStatusActive:    {models.CompetitionStatusClosed},
		models.CompetitionStatusClosed:    {},
	}
	for _, allowed := range allowedTransitions[current] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Matches only move forward: scheduled, live, finished.
func isValidMatchTransition(current, next models.MatchStatus) bool {
	switch current {
	case models.MatchStatusScheduled:
		return next == models.MatchStatusLive
	case models.MatchStatusLive:
		return next == models.MatchStatusFinished
	}
	return false
}

func populateTeamLogoURL(team *models.Team, uploader storage.FileUploader) {
	if team != nil && team.LogoKey != nil && *team.LogoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*team.LogoKey)
		if url != "" {
			team.LogoURL = &url
		}
	}
}

func populateTeamLogoURLs(teams []models.Team, uploader storage.FileUploader) {
	for i := range teams {
		populateTeamLogoURL(&teams[i], uploader)
	}
}

func teamIDs(teams []models.Team) []int {
	ids := make([]int, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}

func teamSet(teams []models.Team) map[int]bool {
	set := make(map[int]bool, len(teams))
	for _, t := range teams {
		set[t.ID] = true
	}
	return set
}

func scheduledOrNow(at *time.Time, now func() time.Time) time.Time {
	if at != nil && !at.IsZero() {
		return at.UTC()
	}
	return now().UTC()
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
