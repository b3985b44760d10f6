package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clovera/admin-api/internal/auth"
)

var _ = Describe("Route Guard", func() {
	Describe("while the session is being restored", func() {
		It("should defer guarded navigations instead of redirecting", func() {
			Expect(auth.ResolveRoute("/", auth.StateLoading)).To(Equal(auth.DecisionDefer))
			Expect(auth.ResolveRoute("/dashboard", auth.StateLoading)).To(Equal(auth.DecisionDefer))
			Expect(auth.ResolveRoute("/users", auth.StateLoading)).To(Equal(auth.DecisionDefer))
			Expect(auth.ResolveRoute("/user/u3", auth.StateLoading)).To(Equal(auth.DecisionDefer))
			Expect(auth.ResolveRoute("/issues/i1", auth.StateLoading)).To(Equal(auth.DecisionDefer))
		})

		It("should still allow unguarded paths", func() {
			Expect(auth.ResolveRoute("/about", auth.StateLoading)).To(Equal(auth.DecisionAllow))
		})
	})

	Describe("with no session", func() {
		It("should allow the login screen", func() {
			Expect(auth.ResolveRoute("/", auth.StateAbsent)).To(Equal(auth.DecisionAllow))
		})

		It("should bounce every protected route to login", func() {
			for _, path := range []string{
				"/dashboard", "/users", "/pending-users", "/patients",
				"/issues", "/settings", "/user/u3", "/issues/i1",
			} {
				Expect(auth.ResolveRoute(path, auth.StateAbsent)).To(Equal(auth.DecisionRedirectLogin), path)
			}
		})

		It("should fall through on unknown paths", func() {
			Expect(auth.ResolveRoute("/no-such-screen", auth.StateAbsent)).To(Equal(auth.DecisionAllow))
		})
	})

	Describe("with an active session", func() {
		It("should bounce the login screen to the dashboard", func() {
			Expect(auth.ResolveRoute("/", auth.StateActive)).To(Equal(auth.DecisionRedirectDashboard))
		})

		It("should allow every protected route", func() {
			for _, path := range []string{
				"/dashboard", "/users", "/pending-users", "/patients",
				"/issues", "/settings", "/user/u3", "/issues/i1",
			} {
				Expect(auth.ResolveRoute(path, auth.StateActive)).To(Equal(auth.DecisionAllow), path)
			}
		})

		It("should fall through on unknown paths", func() {
			Expect(auth.ResolveRoute("/no-such-screen", auth.StateActive)).To(Equal(auth.DecisionAllow))
		})
	})
})
