package e2e

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"

	"slot-lab/infrastructure/platform"
	"slot-lab/repositories"
	"slot-lab/runtime/workers"
	"slot-lab/services"
)

// BaseSuite wires a complete stack for end-to-end scenarios: a real badger
// store in a temp dir, the real services, and the real platform HTTP client
// pointed at an in-process fake adapter.
type BaseSuite struct {
	suite.Suite
	Config Config

	DB      *badger.DB
	Adapter *FakeAdapter

	Keys      *repositories.KeyRepository
	Slots     *repositories.SlotRepository
	Admins    *repositories.AdminRepository
	Deletions *repositories.DeletionRepository

	KeyService   services.IKeyService
	SlotService  *services.SlotService
	AdminService services.IAdminService
	Sweeper      *workers.DeletionSweeper
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest boots a fresh store and adapter so scenarios never share state
func (s *BaseSuite) SetupTest() {
	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })
	s.DB = db

	s.Adapter = NewFakeAdapter(s)
	s.T().Cleanup(s.Adapter.Close)
	client := platform.NewClient(s.Adapter.URL(), "e2e-token")

	log := slog.Default()
	s.Keys = repositories.NewKeyRepository(db, log, s.Config.KeyTag)
	s.Slots = repositories.NewSlotRepository(db, log)
	s.Admins = repositories.NewAdminRepository(db, log)
	s.Deletions = repositories.NewDeletionRepository(db, log)
	redemption := repositories.NewRedemptionRepository(db, log)

	s.KeyService = services.NewKeyService(s.Keys, redemption, client, client, log)
	s.SlotService = services.NewSlotService(s.Slots, s.Deletions, client, client, log)
	s.AdminService = services.NewAdminService(s.Admins, s.Config.PrimaryAdmin)
	s.Sweeper = workers.NewDeletionSweeper(s.Deletions, client, log, time.Minute)
}

// Step prints a colorized header so scenario logs read as a storyboard
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// FakeAdapter is an in-memory stand-in for the chat platform adapter,
// serving the same REST surface the production client targets.
type FakeAdapter struct {
	s      *BaseSuite
	server *httptest.Server

	mu       sync.Mutex
	nextRef  int
	channels map[string]channelState
	dms      []directMessage
}

type channelState struct {
	Name    string
	OwnerID string
	Revoked bool
}

type directMessage struct {
	UserID  string
	Message string
}

func NewFakeAdapter(s *BaseSuite) *FakeAdapter {
	a := &FakeAdapter{s: s, channels: make(map[string]channelState)}

	mux := http.NewServeMux()
	mux.HandleFunc("/channels", a.handleCreate)
	mux.HandleFunc("/channels/", a.handleChannel)
	mux.HandleFunc("/dm", a.handleDM)
	a.server = httptest.NewServer(mux)
	return a
}

func (a *FakeAdapter) URL() string { return a.server.URL }
func (a *FakeAdapter) Close()      { a.server.Close() }

func (a *FakeAdapter) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Name    string `json:"name"`
		OwnerID string `json:"owner_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.nextRef++
	ref := fmt.Sprintf("chan-%d", a.nextRef)
	a.channels[ref] = channelState{Name: req.Name, OwnerID: req.OwnerID}
	a.mu.Unlock()

	a.debugf("adapter: created channel %s (%s)", ref, req.Name)
	_ = json.NewEncoder(w).Encode(map[string]string{"channel_ref": ref})
}

func (a *FakeAdapter) handleChannel(w http.ResponseWriter, r *http.Request) {
	ref := strings.TrimPrefix(r.URL.Path, "/channels/")
	revoke := strings.HasSuffix(ref, "/revoke")
	ref = strings.TrimSuffix(ref, "/revoke")

	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.channels[ref]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch {
	case revoke && r.Method == http.MethodPost:
		state.Revoked = true
		a.channels[ref] = state
		a.debugf("adapter: revoked access on %s", ref)
	case r.Method == http.MethodDelete:
		delete(a.channels, ref)
		a.debugf("adapter: deleted channel %s", ref)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (a *FakeAdapter) handleDM(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.dms = append(a.dms, directMessage{UserID: req.UserID, Message: req.Message})
	a.mu.Unlock()
	a.debugf("adapter: DM to %s: %s", req.UserID, req.Message)
}

func (a *FakeAdapter) Channel(ref string) (channelState, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.channels[ref]
	return state, ok
}

func (a *FakeAdapter) ChannelCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.channels)
}

func (a *FakeAdapter) DirectMessagesTo(userID string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []string
	for _, dm := range a.dms {
		if dm.UserID == userID {
			out = append(out, dm.Message)
		}
	}
	return out
}

func (a *FakeAdapter) debugf(format string, args ...any) {
	if a.s.Config.Debug {
		a.s.T().Logf(format, args...)
	}
}
