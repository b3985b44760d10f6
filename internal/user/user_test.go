package user_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clovera/admin-api/internal"
	"github.com/clovera/admin-api/internal/user"
)

func pendingUser(id string) *user.User {
	return &user.User{
		ID:        id,
		FirstName: "Robert",
		LastName:  "Johnson",
		Email:     "r.johnson@clovera.com",
		Status:    user.StatusPending,
		JoinDate:  time.Date(2023, time.May, 5, 0, 0, 0, 0, time.UTC),
	}
}

func activeUser(id string, role user.Role) *user.User {
	return &user.User{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@clovera.com",
		Role:      &role,
		Status:    user.StatusActive,
		JoinDate:  time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC),
	}
}

var _ = Describe("User Lifecycle", func() {
	Describe("Approve", func() {
		It("should activate a pending user and assign the role", func() {
			u := pendingUser("u1")

			err := u.Approve(user.RoleNurse)

			Expect(err).NotTo(HaveOccurred())
			Expect(u.Status).To(Equal(user.StatusActive))
			Expect(u.Role).NotTo(BeNil())
			Expect(*u.Role).To(Equal(user.RoleNurse))
			Expect(u.CheckInvariant()).To(Succeed())
		})

		It("should succeed without changes when the user is already active", func() {
			u := activeUser("u1", user.RoleDoctor)

			err := u.Approve(user.RoleNurse)

			Expect(err).NotTo(HaveOccurred())
			Expect(*u.Role).To(Equal(user.RoleDoctor))
		})

		It("should refuse to approve a rejected user", func() {
			u := pendingUser("u1")
			Expect(u.Reject()).To(Succeed())

			err := u.Approve(user.RoleNurse)

			Expect(err).To(MatchError(internal.ErrInvalidUserStatus))
			Expect(u.Status).To(Equal(user.StatusRejected))
			Expect(u.Role).To(BeNil())
		})

		It("should refuse to approve a banned user", func() {
			u := activeUser("u1", user.RoleCNA)
			Expect(u.Ban()).To(Succeed())

			err := u.Approve(user.RoleNurse)

			Expect(err).To(MatchError(internal.ErrInvalidUserStatus))
			Expect(u.Status).To(Equal(user.StatusBanned))
		})
	})

	Describe("Reject", func() {
		It("should move a pending user to rejected and keep the record", func() {
			u := pendingUser("u1")

			err := u.Reject()

			Expect(err).NotTo(HaveOccurred())
			Expect(u.Status).To(Equal(user.StatusRejected))
			Expect(u.Role).To(BeNil())
		})

		It("should be a no-op on an already rejected user", func() {
			u := pendingUser("u1")
			Expect(u.Reject()).To(Succeed())

			Expect(u.Reject()).To(Succeed())
			Expect(u.Status).To(Equal(user.StatusRejected))
		})

		It("should refuse to reject an active user", func() {
			u := activeUser("u1", user.RoleNurse)

			err := u.Reject()

			Expect(err).To(MatchError(internal.ErrInvalidUserStatus))
			Expect(u.Status).To(Equal(user.StatusActive))
		})
	})

	Describe("Ban and Unban", func() {
		It("should suspend an active user and keep the role", func() {
			u := activeUser("u1", user.RoleManager)

			err := u.Ban()

			Expect(err).NotTo(HaveOccurred())
			Expect(u.Status).To(Equal(user.StatusBanned))
			Expect(*u.Role).To(Equal(user.RoleManager))
		})

		It("should restore a banned user to active with the role unchanged", func() {
			u := activeUser("u1", user.RoleManager)
			Expect(u.Ban()).To(Succeed())

			err := u.Unban()

			Expect(err).NotTo(HaveOccurred())
			Expect(u.Status).To(Equal(user.StatusActive))
			Expect(*u.Role).To(Equal(user.RoleManager))
			Expect(u.CheckInvariant()).To(Succeed())
		})

		It("should refuse to ban a pending user", func() {
			u := pendingUser("u1")

			err := u.Ban()

			Expect(err).To(MatchError(internal.ErrInvalidUserStatus))
			Expect(u.Status).To(Equal(user.StatusPending))
		})

		It("should treat banning an already banned user as a no-op", func() {
			u := activeUser("u1", user.RoleCNA)
			Expect(u.Ban()).To(Succeed())

			Expect(u.Ban()).To(Succeed())
			Expect(u.Status).To(Equal(user.StatusBanned))
		})

		It("should treat unbanning an active user as a no-op", func() {
			u := activeUser("u1", user.RoleCNA)

			Expect(u.Unban()).To(Succeed())
			Expect(u.Status).To(Equal(user.StatusActive))
		})
	})

	Describe("CheckInvariant", func() {
		It("should reject a pending user with a role", func() {
			u := pendingUser("u1")
			role := user.RoleNurse
			u.Role = &role

			Expect(u.CheckInvariant()).NotTo(Succeed())
		})

		It("should reject an active user without a role", func() {
			u := activeUser("u1", user.RoleNurse)
			u.Role = nil

			Expect(u.CheckInvariant()).NotTo(Succeed())
		})
	})

	Describe("Clone", func() {
		It("should deep copy the role and documents", func() {
			u := pendingUser("u1")
			u.Documents = []user.Document{{ID: "d1", Type: user.DocumentTypeID, Name: "Driver's License"}}

			clone := u.Clone()
			clone.Documents[0].Verified = true
			Expect(clone.Approve(user.RoleNurse)).To(Succeed())

			Expect(u.Documents[0].Verified).To(BeFalse())
			Expect(u.Role).To(BeNil())
			Expect(u.Status).To(Equal(user.StatusPending))
		})
	})
})
