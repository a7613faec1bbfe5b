package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fileshare/internal/domain/repository"
	"fileshare/internal/infra/persistence/postgres"
	"fileshare/internal/util"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type admin struct {
	users  repository.UserRepository
	otps   repository.OTPRepository
	shares repository.ShareRepository
	out    io.Writer
	now    func() time.Time
}

func newPostgresAdmin(db *gorm.DB, out io.Writer) *admin {
	return &admin{
		users:  postgres.NewUserRepository(db),
		otps:   postgres.NewOTPRepository(db),
		shares: postgres.NewShareRepository(db),
		out:    out,
		now:    time.Now,
	}
}

func (a *admin) printStats(ctx context.Context) error {
	userCount, err := a.users.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	otpCount, err := a.otps.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count codes")
	}
	shareStats, err := a.shares.Stats(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load share stats")
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Users:\t%d\n", userCount)
	fmt.Fprintf(w, "File shares:\t%d\n", shareStats.Total)
	fmt.Fprintf(w, "Active shares:\t%d\n", shareStats.Active)
	fmt.Fprintf(w, "Downloads:\t%d\n", shareStats.TotalDownloads)
	fmt.Fprintf(w, "Pending codes:\t%d\n", otpCount)

	return errors.WithStack(w.Flush())
}

func (a *admin) listUsers(ctx context.Context, limit int) error {
	users, err := a.users.List(ctx, limit)
	if err != nil {
		return errors.Wrap(err, "failed to list users")
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found")

		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAUTH\tPHONE\tEMAIL\tCREATED")
	for _, u := range users {
		email := ""
		if u.Email != nil {
			email = *u.Email
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.AuthMethod, u.Phone(), email, u.CreatedAt.Format(time.RFC3339))
	}

	return errors.WithStack(w.Flush())
}

func (a *admin) listShares(ctx context.Context, limit int) error {
	shares, err := a.shares.ListRecent(ctx, limit)
	if err != nil {
		return errors.Wrap(err, "failed to list shares")
	}
	if len(shares) == 0 {
		fmt.Fprintln(a.out, "No file shares found")

		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHARE\tFILE\tSIZE\tUPLOADER\tRECEIVER\tDOWNLOADS\tACTIVE\tEXPIRES\tCREATED")
	now := a.now()
	for _, s := range shares {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%t\t%s\t%s\n",
			s.ShareToken, s.FileName, util.FormatBytes(s.FileSize), s.UploaderName, s.ReceiverPhone,
			s.DownloadCount, s.IsActive, util.FormatExpiry(s.ExpiresAt, now), s.CreatedAt.Format(time.RFC3339))
	}

	return errors.WithStack(w.Flush())
}

func (a *admin) purgeOTPs(ctx context.Context) error {
	deleted, err := a.otps.DeleteExpired(ctx, a.now())
	if err != nil {
		return errors.Wrap(err, "failed to purge expired codes")
	}
	fmt.Fprintf(a.out, "Deleted %d expired codes\n", deleted)

	return nil
}
