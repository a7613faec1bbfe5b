package handler

import (
	"time"

	"fileshare/internal/domain/entity"
	"fileshare/internal/usecase"

	"github.com/google/uuid"
)

// UserView is the public representation of a user.
type UserView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	Email           string    `json:"email,omitempty"`
	ProfilePicture  string    `json:"profilePicture,omitempty"`
	AuthMethod      string    `json:"authMethod"`
	IsPhoneVerified bool      `json:"isPhoneVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newUserView(u *entity.User) *UserView {
	view := &UserView{
		ID:              u.ID,
		Name:            u.Name,
		PhoneNumber:     u.Phone(),
		ProfilePicture:  u.ProfilePicture,
		AuthMethod:      string(u.AuthMethod),
		IsPhoneVerified: u.IsPhoneVerified,
		CreatedAt:       u.CreatedAt,
	}
	if u.Email != nil {
		view.Email = *u.Email
	}

	return view
}

// SessionView is returned by every sign-in endpoint.
type SessionView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *UserView `json:"user"`
	IsNewUser bool      `json:"isNewUser"`
}

// ShareView is the owner's view of a share.
type ShareView struct {
	ID               uuid.UUID  `json:"id"`
	ShareID          string     `json:"shareId"`
	FileName         string     `json:"fileName"`
	FileSize         int64      `json:"fileSize"`
	FileType         string     `json:"fileType"`
	DownloadLink     string     `json:"downloadLink"`
	ReceiverPhone    string     `json:"receiverPhone"`
	DownloadCount    int64      `json:"downloadCount"`
	LastDownloadedAt *time.Time `json:"lastDownloadedAt,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	Notified         *bool      `json:"notified,omitempty"`
}

func newShareView(out *usecase.ShareOutput) *ShareView {
	s := out.Share

	return &ShareView{
		ID:               s.ID,
		ShareID:          s.ShareToken,
		FileName:         s.FileName,
		FileSize:         s.FileSize,
		FileType:         s.FileType,
		DownloadLink:     out.DownloadLink,
		ReceiverPhone:    s.ReceiverPhone,
		DownloadCount:    s.DownloadCount,
		LastDownloadedAt: s.LastDownloadedAt,
		ExpiresAt:        s.ExpiresAt,
		CreatedAt:        s.CreatedAt,
	}
}

// DownloadView is what an anonymous recipient sees.
type DownloadView struct {
	FileName      string    `json:"fileName"`
	FileSize      int64     `json:"fileSize"`
	FileType      string    `json:"fileType"`
	URL           string    `json:"url"`
	UploaderName  string    `json:"uploaderName"`
	DownloadCount int64     `json:"downloadCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newDownloadView(out *usecase.DownloadOutput) *DownloadView {
	s := out.Share

	return &DownloadView{
		FileName:      s.FileName,
		FileSize:      s.FileSize,
		FileType:      s.FileType,
		URL:           out.RetrievalURL,
		UploaderName:  s.UploaderName,
		DownloadCount: s.DownloadCount,
		CreatedAt:     s.CreatedAt,
	}
}
