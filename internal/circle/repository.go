package circle

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"circle-service/internal/apperr"
)

type Repository interface {
	// CreateWithCreator inserts the circle and its creator membership row
	// in one transaction, so a circle is never observable without its
	// creator among the members.
	CreateWithCreator(c *Circle) error
	FindByID(id uint64) (*Circle, error)
	FindByInviteCode(code string) (*Circle, error)
	ListForUser(uid string) ([]Circle, error)
	AddMember(circleID uint64, uid string) error
	RemoveMember(circleID uint64, uid string) error
	IsMember(uid string, circleID uint64) (bool, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository { return &repo{db: db} }

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func (r *repo) CreateWithCreator(c *Circle) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create(&Member{CircleID: c.ID, UserID: c.CreatorID}).Error
	})
	if isUniqueViolation(err) {
		// Two concurrent creates drew the same invite code; the caller
		// draws a fresh one and retries.
		return apperr.Conflictf("invite code already in use")
	}
	return err
}

func (r *repo) FindByID(id uint64) (*Circle, error) {
	var c Circle
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("circle not found")
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindByInviteCode(code string) (*Circle, error) {
	var c Circle
	if err := r.db.First(&c, "invite_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("invalid invite code")
		}
		return nil, err
	}
	return &c, nil
}

func (r *repo) ListForUser(uid string) ([]Circle, error) {
	var circles []Circle
	err := r.db.
		Joins("JOIN members ON members.circle_id = circles.id").
		Where("members.user_id = ?", uid).
		Order("circles.created_at asc, circles.id asc").
		Find(&circles).Error
	if err != nil {
		return nil, err
	}
	return circles, nil
}

func (r *repo) AddMember(circleID uint64, uid string) error {
	err := r.db.Create(&Member{CircleID: circleID, UserID: uid}).Error
	if isUniqueViolation(err) {
		// Concurrent join of the same user: the service pre-checks, the
		// composite PK closes the race.
		return apperr.Conflictf("already a member")
	}
	return err
}

func (r *repo) RemoveMember(circleID uint64, uid string) error {
	// Deleting an absent row affects zero rows and is not an error;
	// leave stays safe to retry.
	return r.db.Delete(&Member{}, "circle_id = ? AND user_id = ?", circleID, uid).Error
}

func (r *repo) IsMember(uid string, circleID uint64) (bool, error) {
	var n int64
	err := r.db.Model(&Member{}).
		Where("circle_id = ? AND user_id = ?", circleID, uid).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
