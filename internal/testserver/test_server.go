package testserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/metrics"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/smallbizpal/smallbizpal/internal/domain/report"
	"github.com/smallbizpal/smallbizpal/internal/mcp"
	"github.com/smallbizpal/smallbizpal/internal/sqlite"
	"github.com/smallbizpal/smallbizpal/internal/tenantlock"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server     *httptest.Server
	DB         *sqlite.DB
	ReportsDir string
	Token      string
	TenantID   string
}

func New(t *testing.T, token, tenantID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn, slog.Default())
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	profileRepo := sqlite.NewProfileRepository(db)
	assetRepo := sqlite.NewAssetRepository(db)
	interactionRepo := sqlite.NewInteractionRepository(db)
	leadRepo := sqlite.NewLeadRepository(db)
	metricsRepo := sqlite.NewMetricsRepository(db)
	tenantRepo := sqlite.NewTenantStateRepository(db)

	reportsDir := t.TempDir()

	profileSvc := profile.NewService(profileRepo, tenantlock.New(), nil)
	assetSvc := asset.NewService(assetRepo, nil)
	interactionSvc := interaction.NewService(interactionRepo, leadRepo, nil)
	metricsSvc := metrics.NewService(metricsRepo, interactionRepo, assetRepo, leadRepo, nil)
	reportSvc := report.NewWriter(reportsDir, nil)

	resolver := &apiKeyResolver{db: db}
	handler := mcp.NewHTTPHandler(mcp.Config{
		Services: mcp.Services{
			Profiles:     profileSvc,
			Assets:       assetSvc,
			Interactions: interactionSvc,
			Metrics:      metricsSvc,
			Reports:      reportSvc,
			Admin:        tenantRepo,
		},
		Resolver:      resolver,
		AuthEnabled:   true,
		TransportMode: "http",
	})
	server := httptest.NewServer(handler)

	ts := &TestServer{
		Server:     server,
		DB:         db,
		ReportsDir: reportsDir,
		Token:      token,
		TenantID:   tenantID,
	}

	require.NoError(t, ts.AddAPIKey(token, tenantID))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

func (ts *TestServer) AddAPIKey(token, tenantID string) error {
	hash := hashToken(token)
	_, err := ts.DB.Exec(
		`INSERT INTO api_keys (key_hash, tenant_id, created_at) VALUES (?, ?, ?)`,
		hash, tenantID, time.Now(),
	)
	return err
}

type apiKeyResolver struct {
	db *sqlite.DB
}

func (r *apiKeyResolver) ResolveTenant(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)
	var tenantID string
	err := r.db.QueryRowContext(ctx, `SELECT tenant_id FROM api_keys WHERE key_hash = ?`, hash).Scan(&tenantID)
	if err != nil || tenantID == "" {
		return "", fmt.Errorf("unknown api key")
	}
	return tenantID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
