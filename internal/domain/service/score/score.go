package score

import (
	"context"
	"fmt"
	"log/slog"

	"djtracker/internal/domain"
	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/contextx"
	"djtracker/pkg/errcodes"
	"djtracker/pkg/logx"
)

// DefaultLevel is the level shown when the caller does not pick one.
const DefaultLevel = "12"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type trackerSource interface {
	Table(ctx context.Context) (entity.Table, error)
}

type profileSource interface {
	Profile(ctx context.Context) (entity.Profile, error)
}

type Service struct {
	tracker trackerSource
	profile profileSource
}

func NewService(tracker trackerSource, profile profileSource) *Service {
	return &Service{
		tracker: tracker,
		profile: profile,
	}
}

type Query struct {
	Mode   value.PlayMode
	Level  string
	Column SortColumn
	Order  SortOrder
}

// Rows builds, filters and sorts the mode's rows.
func (s *Service) Rows(ctx context.Context, q Query) ([]entity.ScoreRow, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	rows := FilterLevel(BuildRows(table, q.Mode), q.Level)

	if err = SortRows(rows, q.Column, q.Order); err != nil {
		return nil, fmt.Errorf("SortRows: %w", err)
	}

	logger(ctx).Debug(
		"score rows built",
		slog.String(logx.FieldMode, q.Mode.String()),
		slog.String("level", q.Level),
		slog.Int(logx.FieldCount, len(rows)),
	)

	return rows, nil
}

// Stats summarises every row of the mode regardless of level.
func (s *Service) Stats(ctx context.Context, mode value.PlayMode) (entity.Summary, error) {
	table, err := s.table(ctx)
	if err != nil {
		return entity.Summary{}, err
	}

	return Summarize(BuildRows(table, mode)), nil
}

func (s *Service) DogTag(ctx context.Context) (entity.DogTag, error) {
	profile, err := s.profile.Profile(ctx)
	if err != nil {
		return entity.DogTag{}, domain.WrapError(err, errcodes.ProfileUnreadable, "profile unreadable")
	}

	table, err := s.table(ctx)
	if err != nil {
		return entity.DogTag{}, err
	}

	return NewDogTag(profile, table), nil
}

func (s *Service) table(ctx context.Context) (entity.Table, error) {
	table, err := s.tracker.Table(ctx)
	if err != nil {
		return entity.Table{}, domain.WrapError(err, errcodes.TrackerUnreadable, "tracker unreadable")
	}

	if table.Column(columnTitle) == -1 {
		return entity.Table{}, domain.NewError(errcodes.ColumnNotFound, "tracker has no title column")
	}

	return table, nil
}
