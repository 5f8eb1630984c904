package bloglist

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// User is the user model. PasswordHash never leaves the process: it is
// excluded from JSON and must not appear in error messages.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username"`
	Name          string     `bun:"name" json:"name,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Blogs         []*Blog    `bun:"rel:has-many,join:id=user_id" json:"blogs,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Validate will run validation rules
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(
			&u.Username,
			validation.Required,
			validation.RuneLength(3, 20),
			validation.Match(usernamePattern).
				Error("must contain only letters, numbers, and underscores"),
		),
	)
}

// Blog is the post model. UserID is the owning user; rows created before
// ownership stamping existed carry a NULL owner and stay undeletable
// through the API.
type Blog struct {
	bun.BaseModel `bun:"table:blogs,alias:blg"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title"`
	Author        string     `bun:"author" json:"author"`
	URL           string     `bun:"url,notnull" json:"url"`
	Likes         int64      `bun:"likes,notnull,default:0" json:"likes"`
	UserID        *uuid.UUID `bun:"user_id,type:uuid,nullzero" json:"-"`
	User          *User      `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Validate will run validation rules
func (b Blog) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.URL, validation.Required),
		validation.Field(&b.Likes, validation.Min(int64(0))),
	)
}

// OwnerID returns the owning user id as a string, or "" for legacy
// ownerless rows.
func (b *Blog) OwnerID() string {
	if b.UserID == nil {
		return ""
	}
	return b.UserID.String()
}

type authIdentity struct {
	id       string
	username string
	name     string
}

func (a authIdentity) ID() string       { return a.id }
func (a authIdentity) Username() string { return a.username }
func (a authIdentity) Name() string     { return a.name }

// IdentityFromUser adapts a stored user record into an Identity.
func IdentityFromUser(user *User) Identity {
	return authIdentity{
		id:       user.ID.String(),
		username: user.Username,
		name:     user.Name,
	}
}
