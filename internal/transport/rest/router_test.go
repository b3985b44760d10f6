package rest_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/clovera/admin-api/internal/auth"
	"github.com/clovera/admin-api/internal/core/events"
	"github.com/clovera/admin-api/internal/dashboard"
	"github.com/clovera/admin-api/internal/issue"
	"github.com/clovera/admin-api/internal/patient"
	"github.com/clovera/admin-api/internal/store"
	"github.com/clovera/admin-api/internal/transport/rest"
	"github.com/clovera/admin-api/internal/user"
)

type memorySessionRepository struct {
	stored *auth.Admin
}

func (m *memorySessionRepository) Save(admin auth.Admin) error {
	m.stored = &admin
	return nil
}

func (m *memorySessionRepository) Load() (*auth.Admin, error) {
	return m.stored, nil
}

func (m *memorySessionRepository) Delete() error {
	m.stored = nil
	return nil
}

func (m *memorySessionRepository) Ping() error { return nil }

var _ = Describe("Admin API Integration", func() {
	var (
		router   *chi.Mux
		gate     *auth.Gate
		sessions *memorySessionRepository
	)

	do := func(method, target, token string, body interface{}) *httptest.ResponseRecorder {
		var reader *strings.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = strings.NewReader(string(payload))
		} else {
			reader = strings.NewReader("")
		}

		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	login := func() string {
		w := do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"email":    "admin@clovera.com",
			"password": "admin123",
		})
		Expect(w.Code).To(Equal(http.StatusOK))

		var session auth.Session
		Expect(json.NewDecoder(w.Body).Decode(&session)).To(Succeed())
		Expect(session.AccessToken).NotTo(BeEmpty())
		return session.AccessToken
	}

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		sessions = &memorySessionRepository{}
		bus := events.NewEventBus(slogger)
		tokens := auth.NewJWTTokenGenerator("integration-secret-0123456789abcdef", time.Hour)
		cred := auth.Credential{
			Admin: auth.Admin{
				ID:     "admin-001",
				Name:   "Admin User",
				Email:  "admin@clovera.com",
				Role:   "Super Admin",
				Avatar: "/avatar.png",
			},
			PasswordHash: string(hash),
		}
		gate = auth.NewGate(cred, sessions, tokens, bus, slogger)

		dataStore, err := store.NewSeeded()
		Expect(err).NotTo(HaveOccurred())

		router = chi.NewRouter()
		rest.RegisterAllRoutes(
			router,
			sessions,
			auth.NewHandler(gate),
			user.NewHandler(user.NewService(dataStore.Users(), bus, slogger)),
			patient.NewHandler(patient.NewService(dataStore.Patients(), slogger)),
			issue.NewHandler(issue.NewService(dataStore.Issues(), bus, slogger)),
			dashboard.NewHandler(dataStore),
			slogger,
		)
	})

	Describe("before the session restore completes", func() {
		It("should tell callers of guarded routes to retry", func() {
			w := do(http.MethodGet, "/api/v1/users", "", nil)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(w.Header().Get("Retry-After")).To(Equal("1"))
		})

		It("should report the loading state", func() {
			w := do(http.MethodGet, "/api/v1/auth/session", "", nil)

			Expect(w.Code).To(Equal(http.StatusOK))

			var view auth.SessionView
			Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
			Expect(view.State).To(Equal(auth.StateLoading))
			Expect(view.Admin).To(BeNil())
		})
	})

	Describe("with the restore done", func() {
		BeforeEach(func() {
			gate.Restore()
		})

		It("should answer pings without a session", func() {
			w := do(http.MethodGet, "/api/v1/ping", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("should report a healthy session store", func() {
			w := do(http.MethodGet, "/api/v1/health", "", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("session_store"))
		})

		It("should refuse guarded routes without a token", func() {
			w := do(http.MethodGet, "/api/v1/users", "", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should refuse a garbage token", func() {
			w := do(http.MethodGet, "/api/v1/users", "not-a-token", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should refuse wrong credentials", func() {
			w := do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
				"email":    "admin@clovera.com",
				"password": "nope",
			})
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		Describe("once signed in", func() {
			var token string

			BeforeEach(func() {
				token = login()
			})

			It("should persist the session record", func() {
				Expect(sessions.stored).NotTo(BeNil())
				Expect(sessions.stored.ID).To(Equal("admin-001"))
			})

			It("should report the active session", func() {
				w := do(http.MethodGet, "/api/v1/auth/session", "", nil)
				Expect(w.Code).To(Equal(http.StatusOK))

				var view auth.SessionView
				Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
				Expect(view.State).To(Equal(auth.StateActive))
				Expect(view.Admin).NotTo(BeNil())
				Expect(view.Admin.Email).To(Equal("admin@clovera.com"))
			})

			It("should serve the dashboard counters", func() {
				w := do(http.MethodGet, "/api/v1/dashboard/stats", token, nil)
				Expect(w.Code).To(Equal(http.StatusOK))

				var stats store.Stats
				Expect(json.NewDecoder(w.Body).Decode(&stats)).To(Succeed())
				Expect(stats.TotalUsers).To(Equal(10))
				Expect(stats.ActiveUsers).To(Equal(6))
				Expect(stats.PendingUsers).To(Equal(3))
				Expect(stats.Patients).To(Equal(6))
				Expect(stats.OpenIssues).To(Equal(1))
			})

			It("should list and filter users", func() {
				w := do(http.MethodGet, "/api/v1/users?query=john&status=active", token, nil)
				Expect(w.Code).To(Equal(http.StatusOK))

				var payload struct {
					Users []user.User `json:"users"`
					Total int         `json:"total"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&payload)).To(Succeed())
				Expect(payload.Total).To(Equal(1))
				Expect(payload.Users[0].ID).To(Equal("u1"))
			})

			It("should serve the approval queue", func() {
				w := do(http.MethodGet, "/api/v1/users/pending", token, nil)
				Expect(w.Code).To(Equal(http.StatusOK))

				var payload struct {
					Users []user.User `json:"users"`
					Total int         `json:"total"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&payload)).To(Succeed())
				Expect(payload.Total).To(Equal(3))
			})

			It("should approve a pending user", func() {
				w := do(http.MethodPost, "/api/v1/users/u3/approve", token, map[string]string{"role": "Nurse"})
				Expect(w.Code).To(Equal(http.StatusOK))

				var u user.User
				Expect(json.NewDecoder(w.Body).Decode(&u)).To(Succeed())
				Expect(u.Status).To(Equal(user.StatusActive))
				Expect(u.Role).NotTo(BeNil())
				Expect(*u.Role).To(Equal(user.RoleNurse))
			})

			It("should refuse approval without a role", func() {
				w := do(http.MethodPost, "/api/v1/users/u3/approve", token, map[string]string{})
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})

			It("should refuse to approve a banned user", func() {
				w := do(http.MethodPost, "/api/v1/users/u5/approve", token, map[string]string{"role": "Nurse"})
				Expect(w.Code).To(Equal(http.StatusConflict))
			})

			It("should verify a pending user's document", func() {
				w := do(http.MethodPost, "/api/v1/users/u3/documents/d1/verify", token, nil)
				Expect(w.Code).To(Equal(http.StatusOK))

				var u user.User
				Expect(json.NewDecoder(w.Body).Decode(&u)).To(Succeed())
				Expect(u.Documents[0].Verified).To(BeTrue())
			})

			It("should return 404 for an unknown user", func() {
				w := do(http.MethodGet, "/api/v1/users/u99", token, nil)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})

			It("should list patients with filters", func() {
				w := do(http.MethodGet, "/api/v1/patients?status=inpatient", token, nil)
				Expect(w.Code).To(Equal(http.StatusOK))

				var payload struct {
					Patients []patient.Patient `json:"patients"`
					Total    int               `json:"total"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&payload)).To(Succeed())
				Expect(payload.Total).To(Equal(3))
			})

			It("should move an issue through the workflow", func() {
				w := do(http.MethodPatch, "/api/v1/issues/i1/status", token, map[string]string{"status": "in-progress"})
				Expect(w.Code).To(Equal(http.StatusOK))

				var i issue.Issue
				Expect(json.NewDecoder(w.Body).Decode(&i)).To(Succeed())
				Expect(i.Status).To(Equal(issue.StatusInProgress))
			})

			It("should attach the signed-in admin to a new reply", func() {
				w := do(http.MethodPost, "/api/v1/issues/i1/responses", token, map[string]string{"text": "On it."})
				Expect(w.Code).To(Equal(http.StatusCreated))

				var i issue.Issue
				Expect(json.NewDecoder(w.Body).Decode(&i)).To(Succeed())
				Expect(i.Responses).To(HaveLen(1))
				Expect(i.Responses[0].AdminID).To(Equal("admin-001"))
				Expect(i.Responses[0].AdminName).To(Equal("Admin User"))
			})

			It("should refuse replies on a resolved issue", func() {
				w := do(http.MethodPost, "/api/v1/issues/i3/responses", token, map[string]string{"text": "Too late."})
				Expect(w.Code).To(Equal(http.StatusConflict))
			})

			It("should refuse a blank reply", func() {
				w := do(http.MethodPost, "/api/v1/issues/i1/responses", token, map[string]string{"text": "   "})
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})

			It("should invalidate the session on logout", func() {
				w := do(http.MethodPost, "/api/v1/auth/logout", "", nil)
				Expect(w.Code).To(Equal(http.StatusNoContent))
				Expect(sessions.stored).To(BeNil())

				w = do(http.MethodGet, "/api/v1/users", token, nil)
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("error body shape", func() {
		It("should wrap domain errors in the error envelope", func() {
			gate.Restore()
			token := login()

			w := do(http.MethodPost, "/api/v1/users/u5/approve", token, map[string]string{"role": "Nurse"})
			Expect(w.Code).To(Equal(http.StatusConflict))

			var payload struct {
				Error struct {
					Type    string `json:"type"`
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&payload)).To(Succeed())
			Expect(payload.Error.Type).To(Equal("CONFLICT"))
			Expect(payload.Error.Code).To(Equal("INVALID_USER_STATUS"))
			Expect(payload.Error.Message).NotTo(BeEmpty())
		})
	})

	Describe("CORS", func() {
		It("should short-circuit preflight requests", func() {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/users", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).NotTo(BeEmpty())
		})
	})
})

var _ = Describe("Trace IDs", func() {
	It("should stamp responses with a trace id", func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		sessions := &memorySessionRepository{}
		tokens := auth.NewJWTTokenGenerator("integration-secret-0123456789abcdef", time.Hour)
		gate := auth.NewGate(auth.Credential{}, sessions, tokens, nil, slogger)

		dataStore, err := store.NewSeeded()
		Expect(err).NotTo(HaveOccurred())

		router := chi.NewRouter()
		rest.RegisterAllRoutes(
			router,
			sessions,
			auth.NewHandler(gate),
			user.NewHandler(user.NewService(dataStore.Users(), nil, slogger)),
			patient.NewHandler(patient.NewService(dataStore.Patients(), slogger)),
			issue.NewHandler(issue.NewService(dataStore.Issues(), nil, slogger)),
			dashboard.NewHandler(dataStore),
			slogger,
		)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

		Expect(w.Header().Get("X-Trace-ID")).NotTo(BeEmpty())
	})
})
