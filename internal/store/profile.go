package store

import (
	"context"
	"fmt"

	"github.com/boaziz1447-maker/omar-alessa/ent"
)

// profileRepo implements ProfileRepo using the ent client. A single
// row holds the profile; Save replaces it.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context) (Profile, error) {
	row, err := r.client.LessonProfile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Profile{}, nil
		}
		return Profile{}, fmt.Errorf("query lesson profile: %w", err)
	}
	return Profile{
		TeacherName: row.TeacherName,
		School:      row.School,
		Region:      row.Region,
		Subject:     row.Subject,
		Grade:       row.Grade,
		Principal:   row.Principal,
	}, nil
}

func (r *profileRepo) Save(ctx context.Context, p Profile) error {
	n, err := r.client.LessonProfile.Update().
		SetTeacherName(p.TeacherName).
		SetSchool(p.School).
		SetRegion(p.Region).
		SetSubject(p.Subject).
		SetGrade(p.Grade).
		SetPrincipal(p.Principal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update lesson profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.LessonProfile.Create().
		SetTeacherName(p.TeacherName).
		SetSchool(p.School).
		SetRegion(p.Region).
		SetSubject(p.Subject).
		SetGrade(p.Grade).
		SetPrincipal(p.Principal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create lesson profile: %w", err)
	}
	return nil
}
