package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles recognized by the role hierarchy. Admin covers manager, manager
// covers staff and doctor, everyone covers customer.
const (
	RoleCustomer = "customer"
	RoleDoctor   = "doctor"
	RoleStaff    = "staff"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

var roleRank = map[string]int{
	RoleCustomer: 0,
	RoleDoctor:   1,
	RoleStaff:    1,
	RoleManager:  2,
	RoleAdmin:    3,
}

// RoleSatisfies reports whether a caller holding role have meets the
// requirement need. Staff and doctor sit at the same rank but do not
// satisfy each other.
func RoleSatisfies(have, need string) bool {
	hr, ok := roleRank[have]
	if !ok {
		return false
	}
	nr, ok := roleRank[need]
	if !ok {
		return false
	}
	if hr == nr {
		return have == need
	}
	return hr > nr
}

// User holds the structure for the users collection
type User struct {
	ID                    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email                 string             `json:"email" bson:"email"`
	Username              string             `json:"username" bson:"username"`
	Password              string             `json:"-" bson:"password"`
	Role                  string             `json:"role" bson:"role"`
	Gender                string             `json:"gender" bson:"gender"`
	PhoneNumber           string             `json:"phoneNumber" bson:"phoneNumber"`
	AvatarURL             string             `json:"avatarUrl" bson:"avatarUrl"`
	Active                bool               `json:"active" bson:"active"`
	EmailVerified         bool               `json:"emailVerified" bson:"emailVerified"`
	VerificationToken     string             `json:"-" bson:"verificationToken,omitempty"`
	VerificationExpiresAt primitive.DateTime `json:"-" bson:"verificationExpiresAt,omitempty"`
	ResetToken            string             `json:"-" bson:"resetToken,omitempty"`
	ResetExpiresAt        primitive.DateTime `json:"-" bson:"resetExpiresAt,omitempty"`
	CreatedAt             primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt             primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// LoginHistory records one login attempt
type LoginHistory struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	IP        string             `json:"ip" bson:"ip"`
	UserAgent string             `json:"userAgent" bson:"userAgent"`
	Success   bool               `json:"success" bson:"success"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// PatientProfile is a bookable patient record owned by a customer account,
// so one account can book for family members
type PatientProfile struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OwnerUserID primitive.ObjectID `json:"ownerUserId" bson:"ownerUserId"`
	FullName    string             `json:"fullName" bson:"fullName"`
	DateOfBirth string             `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender      string             `json:"gender" bson:"gender"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber"`
	Notes       string             `json:"notes" bson:"notes"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
