package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/service/rank"
	"djtracker/internal/domain/service/score"
	"djtracker/internal/domain/value"
	"djtracker/pkg/errcodes"
	"djtracker/pkg/httpx/reply"
	"djtracker/pkg/httpx/req"
	"djtracker/pkg/rest"
)

type scoreService interface {
	Rows(ctx context.Context, q score.Query) ([]entity.ScoreRow, error)
	Stats(ctx context.Context, mode value.PlayMode) (entity.Summary, error)
	DogTag(ctx context.Context) (entity.DogTag, error)
}

type ScoreServer struct {
	scoreService scoreService
}

func NewScoreServer(scoreService scoreService) ScoreServer {
	return ScoreServer{
		scoreService: scoreService,
	}
}

func (s ScoreServer) getV1Scores(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := playMode(r, "mode", errcodes.InvalidPlayMode)
	if err != nil {
		return err
	}

	lvl, err := level(r)
	if err != nil {
		return err
	}

	column, err := score.ParseSortColumn(r.URL.Query().Get("sort"))
	if err != nil {
		return fmt.Errorf("score.ParseSortColumn: %w", err)
	}

	order, err := score.ParseSortOrder(r.URL.Query().Get("order"))
	if err != nil {
		return fmt.Errorf("score.ParseSortOrder: %w", err)
	}

	rows, err := s.scoreService.Rows(ctx, score.Query{
		Mode:   mode,
		Level:  lvl,
		Column: column,
		Order:  order,
	})
	if err != nil {
		return fmt.Errorf("scoreService.Rows: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Scores{
		Mode:  mode.String(),
		Level: lvl,
		Sort:  string(column),
		Order: string(order),
		Rows: lo.Map(rows, func(row entity.ScoreRow, _ int) rest.ScoreRow {
			return newRESTScoreRow(row)
		}),
	})

	return nil
}

func (s ScoreServer) getV1ScoreStats(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := playMode(r, "mode", errcodes.InvalidPlayMode)
	if err != nil {
		return err
	}

	summary, err := s.scoreService.Stats(ctx, mode)
	if err != nil {
		return fmt.Errorf("scoreService.Stats: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTStats(mode, summary))

	return nil
}

func (s ScoreServer) getV1Profile(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tag, err := s.scoreService.DogTag(ctx)
	if err != nil {
		return fmt.Errorf("scoreService.DogTag: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProfile(tag, score.DogTagLines(tag)))

	return nil
}

func (s ScoreServer) postV1RankEvaluate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RankEvaluateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	evaluation := rank.Evaluate(request.Rank, request.Score, request.Notes)

	reply.JSON(ctx, w, http.StatusOK, newRESTRankEvaluation(evaluation))

	return nil
}

func (s ScoreServer) getV1Lamp(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	code := chi.URLParam(r, "code")

	reply.JSON(ctx, w, http.StatusOK, newRESTLamp(value.NormalizeLampCode(code), value.DecodeLamp(code)))

	return nil
}
