package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kaanyalova/draft-advisor/internal/config"
	"github.com/kaanyalova/draft-advisor/internal/domain"
	"github.com/kaanyalova/draft-advisor/internal/meta"
	"github.com/kaanyalova/draft-advisor/internal/repository"
)

const (
	dataDragonBaseURL = "https://ddragon.leagueoflegends.com"
)

// ChampionService syncs the champion catalog from Data Dragon and seeds
// the meta statistics table the store-backed provider reads from.
type ChampionService struct {
	championRepo repository.ChampionRepository
	metaRepo     repository.MetaStatsRepository
	cfg          *config.Config
	httpClient   *http.Client
}

func NewChampionService(championRepo repository.ChampionRepository, metaRepo repository.MetaStatsRepository, cfg *config.Config) *ChampionService {
	return &ChampionService{
		championRepo: championRepo,
		metaRepo:     metaRepo,
		cfg:          cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *ChampionService) GetAllChampions(ctx context.Context) ([]*domain.ChampionRecord, error) {
	return s.championRepo.GetAll(ctx)
}

func (s *ChampionService) GetChampion(ctx context.Context, id string) (*domain.ChampionRecord, error) {
	return s.championRepo.GetByID(ctx, id)
}

func (s *ChampionService) GetChampionByKey(ctx context.Context, key int) (*domain.ChampionRecord, error) {
	return s.championRepo.GetByKey(ctx, key)
}

type DataDragonVersionResponse []string

type DataDragonChampionsResponse struct {
	Type    string                        `json:"type"`
	Format  string                        `json:"format"`
	Version string                        `json:"version"`
	Data    map[string]DataDragonChampion `json:"data"`
}

type DataDragonChampion struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Image struct {
		Full string `json:"full"`
	} `json:"image"`
}

func (s *ChampionService) SyncFromDataDragon(ctx context.Context) (int, string, error) {
	// Get latest version
	version, err := s.getLatestVersion()
	if err != nil {
		return 0, "", fmt.Errorf("failed to get latest version: %w", err)
	}

	// Get champions
	championsURL := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", dataDragonBaseURL, version)
	resp, err := s.httpClient.Get(championsURL)
	if err != nil {
		return 0, "", fmt.Errorf("failed to fetch champions: %w", err)
	}
	defer resp.Body.Close()

	var championsResp DataDragonChampionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&championsResp); err != nil {
		return 0, "", fmt.Errorf("failed to decode champions: %w", err)
	}

	champions := make([]*domain.ChampionRecord, 0, len(championsResp.Data))
	for _, c := range championsResp.Data {
		key, err := strconv.Atoi(c.Key)
		if err != nil {
			return 0, "", fmt.Errorf("champion %s has non-numeric key %q", c.ID, c.Key)
		}
		tagsJSON, _ := json.Marshal(c.Tags)
		champion := &domain.ChampionRecord{
			ID:           c.ID,
			Key:          key,
			Name:         c.Name,
			Title:        c.Title,
			ImageURL:     fmt.Sprintf("%s/cdn/%s/img/champion/%s", dataDragonBaseURL, version, c.Image.Full),
			Tags:         tagsJSON,
			LastSyncedAt: time.Now(),
		}
		champions = append(champions, champion)
	}

	if err := s.championRepo.UpsertMany(ctx, champions); err != nil {
		return 0, "", fmt.Errorf("failed to upsert champions: %w", err)
	}

	return len(champions), version, nil
}

// SeedMetaStats writes the bundled meta snapshot into the database when no
// stats have been synced yet, then prunes rows from older patches. The
// store-backed provider serves whatever this table holds after its next
// refresh.
func (s *ChampionService) SeedMetaStats(ctx context.Context) (int, error) {
	existing, err := s.metaRepo.GetLatestPatch(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check meta stats: %w", err)
	}

	entries := meta.BundledStats()
	if len(entries) == 0 {
		return 0, nil
	}
	patch := entries[0].Patch
	if existing == patch {
		return 0, nil
	}

	records := make([]*domain.MetaStatRecord, 0, len(entries))
	now := time.Now()
	for _, e := range entries {
		records = append(records, &domain.MetaStatRecord{
			ChampionKey: e.ChampionID,
			Role:        e.Role,
			Tier:        e.Tier,
			WinRate:     e.WinRate,
			PickRate:    e.PickRate,
			BanRate:     e.BanRate,
			Patch:       e.Patch,
			UpdatedAt:   now,
		})
	}

	if err := s.metaRepo.UpsertMany(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to seed meta stats: %w", err)
	}
	if err := s.metaRepo.DeleteOlderThanPatch(ctx, patch); err != nil {
		return 0, fmt.Errorf("failed to prune stale meta stats: %w", err)
	}
	return len(records), nil
}

func (s *ChampionService) getLatestVersion() (string, error) {
	if s.cfg.DataDragonVersion != "" {
		return s.cfg.DataDragonVersion, nil
	}

	resp, err := s.httpClient.Get(dataDragonBaseURL + "/api/versions.json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var versions DataDragonVersionResponse
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", err
	}

	if len(versions) == 0 {
		return "", fmt.Errorf("no versions available")
	}

	return versions[0], nil
}

func (s *ChampionService) GetLatestVersion() (string, error) {
	return s.getLatestVersion()
}
