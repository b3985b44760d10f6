package auth_test

import (
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/clovera/admin-api/internal/auth"
)

var _ = Describe("SessionStore", func() {
	var (
		path  string
		store *auth.SessionStore
	)

	admin := auth.Admin{
		ID:     "admin-001",
		Name:   "Admin User",
		Email:  "admin@clovera.com",
		Role:   "Super Admin",
		Avatar: "/avatar.png",
	}

	BeforeEach(func() {
		var err error
		path = filepath.Join(GinkgoT().TempDir(), "session.db")
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		store, err = auth.NewSessionStore(path, slogger)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should round-trip the admin through the durable record", func() {
		Expect(store.Save(admin)).To(Succeed())

		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).NotTo(BeNil())
		Expect(*loaded).To(Equal(admin))
	})

	It("should report a missing record as no session", func() {
		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(BeNil())
	})

	It("should overwrite the record on repeated saves", func() {
		Expect(store.Save(admin)).To(Succeed())

		renamed := admin
		renamed.Name = "Renamed Admin"
		Expect(store.Save(renamed)).To(Succeed())

		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Name).To(Equal("Renamed Admin"))
	})

	It("should survive a restart of the store handle", func() {
		Expect(store.Save(admin)).To(Succeed())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		reopened, err := auth.NewSessionStore(path, slogger)
		Expect(err).NotTo(HaveOccurred())

		loaded, err := reopened.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).NotTo(BeNil())
		Expect(loaded.ID).To(Equal("admin-001"))
	})

	It("should discard a record that no longer parses", func() {
		Expect(store.Save(admin)).To(Succeed())

		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.Exec(
			"UPDATE session_records SET record_value = ? WHERE record_key = ?",
			"{not valid json", auth.SessionRecordKey,
		).Error).NotTo(HaveOccurred())

		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(BeNil())

		// The corrupt row is gone for good, not just skipped.
		loaded, err = store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(BeNil())

		var count int64
		Expect(db.Table("session_records").Count(&count).Error).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})

	It("should delete the record on demand", func() {
		Expect(store.Save(admin)).To(Succeed())
		Expect(store.Delete()).To(Succeed())

		loaded, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(BeNil())
	})

	It("should answer health pings", func() {
		Expect(store.Ping()).To(Succeed())
	})
})
