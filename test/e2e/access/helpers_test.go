package access_test

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/access/pkg/accesssdk"
	"github.com/aussiebroadwan/access/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for access service end-to-end tests.
 * The tests play the login service: they hold the signing key, hand the
 * container its JWKS and mint bearer tokens for seeded users.
 */

const (
	testImageName = "access-service-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	testIssuer     = "https://login.test"
	testAudience   = "access"
	testKID        = "e2e-key-001"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Access Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Access Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/access/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// issuer signs tokens the container accepts.
type issuer struct {
	priv ed25519.PrivateKey
	jwks []byte
}

func newIssuer(t *testing.T) *issuer {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	jwks, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{
		jwtx.NewEd25519JWK(testKID, "sig", jwtx.AlgorithmEdDSA, pub),
	}})
	require.NoError(t, err)
	return &issuer{priv: priv, jwks: jwks}
}

// token mints an access token for a user id.
func (i *issuer) token(t *testing.T, userID int64) string {
	t.Helper()
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
		},
	})
	tok.Header["kid"] = testKID
	signed, err := tok.SignedString(i.priv)
	require.NoError(t, err)
	return signed
}

// setupAccessContainer starts the access service in a container with
// relaxed rate limits and returns the base URL.
func setupAccessContainer(t *testing.T, iss *issuer) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Files: []testcontainers.ContainerFile{{
			Reader:            bytes.NewReader(iss.jwks),
			ContainerFilePath: "/data/jwks.json",
			FileMode:          0o644,
		}},
		Env: map[string]string{
			"BOOTSTRAP_TOKEN":      bootstrapToken,
			"ACCESS_DATABASE_FILE": "/data/access.db",
			"ACCESS_PEPPER_FILE":   "/data/pepper",
			"AUTH_ISSUER":          testIssuer,
			"AUTH_AUDIENCE":        testAudience,
			"AUTH_JWKS_FILE":       "/data/jwks.json",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
			// Tests make many rapid requests which would otherwise hit the production limits
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// orgSeed is HQ with Sales (East below it) and Ops. mia manages Sales,
// carl is a clerk in East, aude audits East and Ops.
func orgSeed() accesssdk.BootstrapRequest {
	return accesssdk.BootstrapRequest{
		Departments: []accesssdk.SeedDepartment{
			{Key: "hq", Name: "HQ"},
			{Key: "sales", Parent: "hq", Name: "Sales", Order: 1},
			{Key: "east", Parent: "sales", Name: "East"},
			{Key: "ops", Parent: "hq", Name: "Ops", Order: 2},
		},
		Menus: []accesssdk.SeedMenu{
			{Key: "system", Name: "System", Type: "directory", Path: "/system", Order: 1},
			{Key: "users", Parent: "system", Name: "Users", Type: "menu", Path: "/system/user", Component: "system/user/index", Permission: "sys:user:list"},
			{Key: "user-edit", Parent: "users", Name: "Edit user", Type: "button", Permission: "sys:user:edit"},
			{Key: "depts", Parent: "system", Name: "Departments", Type: "menu", Path: "/system/dept", Component: "system/dept/index", Permission: "sys:dept:list"},
			{Key: "dept-add", Parent: "depts", Name: "Add department", Type: "button", Permission: "sys:dept:add"},
			{Key: "roles", Parent: "system", Name: "Roles", Type: "menu", Path: "/system/role", Component: "system/role/index", Permission: "sys:role:list"},
			{Key: "role-edit", Parent: "roles", Name: "Edit role", Type: "button", Permission: "sys:role:edit"},
			{Key: "records", Name: "Records", Type: "menu", Path: "/records", Component: "records/index", Permission: "data:record:list", Order: 2},
			{Key: "record-add", Parent: "records", Name: "Add record", Type: "button", Permission: "data:record:add"},
		},
		Roles: []accesssdk.SeedRole{
			{Code: "admin", Name: "Administrator", DataScope: "all", Menus: []string{"*"}},
			{Code: "manager", Name: "Manager", DataScope: "dept_and_below", Menus: []string{"system", "users", "records", "record-add"}},
			{Code: "clerk", Name: "Clerk", DataScope: "self", Menus: []string{"records", "record-add"}},
			{Code: "auditor", Name: "Auditor", DataScope: "custom", Menus: []string{"records"}, Departments: []string{"east", "ops"}},
		},
		Users: []accesssdk.SeedUser{
			{Username: "admin", Password: "admin-password", Department: "hq", Roles: []string{"admin"}},
			{Username: "mia", Password: "mia-password", Department: "sales", Roles: []string{"manager"}},
			{Username: "carl", Password: "carl-password", Department: "east", Roles: []string{"clerk"}},
			{Username: "aude", Password: "aude-password", Department: "ops", Roles: []string{"auditor"}},
		},
	}
}

// env is a bootstrapped container plus sessions for every seeded user.
type env struct {
	client   *accesssdk.SDKClient
	issuer   *issuer
	userIDs  map[string]int64
	sessions map[string]*accesssdk.Session
}

// setupBootstrapped starts a container, seeds orgSeed and opens a session per
// user. The admin session looks up the other users' ids.
func setupBootstrapped(t *testing.T) (*env, func()) {
	t.Helper()
	iss := newIssuer(t)
	baseURL, cleanup := setupAccessContainer(t, iss)

	client := accesssdk.NewSDKClient(baseURL)
	_, err := client.Bootstrap(t.Context(), bootstrapToken, orgSeed())
	require.NoError(t, err, "Bootstrap should succeed")

	e := &env{
		client:   client,
		issuer:   iss,
		userIDs:  map[string]int64{},
		sessions: map[string]*accesssdk.Session{},
	}

	// The admin account is the first one the seed creates.
	admin := client.WithToken(iss.token(t, 1))
	users, err := admin.ListUsers(t.Context(), accesssdk.UserQuery{Size: 100})
	require.NoError(t, err)
	for _, u := range users.Users {
		e.userIDs[u.Username] = u.ID
		e.sessions[u.Username] = client.WithToken(iss.token(t, u.ID))
	}
	require.Len(t, e.userIDs, 4)

	return e, cleanup
}

func (e *env) deptID(t *testing.T, name string) int64 {
	t.Helper()
	depts, err := e.sessions["admin"].ListDepartments(t.Context())
	require.NoError(t, err)
	for _, d := range depts {
		if d.Name == name {
			return d.ID
		}
	}
	t.Fatalf("Department '%s' not found", name)
	return 0
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *accesssdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertStatus checks that err is an API error with the given status.
func assertStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	var apiErr *accesssdk.APIError
	require.True(t, errors.As(err, &apiErr), "%s - expected an API error, got: %v", context, err)
	require.Equal(t, status, apiErr.StatusCode, "%s - %s", context, strings.TrimSpace(apiErr.Message))
}
