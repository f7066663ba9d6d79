package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/config"
	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const postColumns = "id::text, quote, reference, insight, remember, likes, date, created_at, updated_at"

type PostRepo struct {
	db *pgxpool.Pool
}

func NewPostRepo(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
	}
}

// parseID rejects ids that cannot exist in the uuid column before they reach postgres.
func parseID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	if err := row.Scan(
		&post.ID,
		&post.Quote,
		&post.Reference,
		&post.Insight,
		&post.Remember,
		&post.Likes,
		&post.Date,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	post.Date = model.MidnightUTC(post.Date)
	return &post, nil
}

func (r *PostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	created, err := scanPost(r.db.QueryRow(
		ctx,
		"INSERT INTO posts(id, quote, reference, insight, remember, likes, date) VALUES($1, $2, $3, $4, $5, 0, $6) RETURNING "+postColumns,
		post.ID,
		post.Quote,
		post.Reference,
		post.Insight,
		post.Remember,
		post.Date,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateDate
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return created, nil
}

func (r *PostRepo) FindByID(ctx context.Context, id string) (*model.Post, error) {
	id, ok := parseID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}

	post, err := scanPost(r.db.QueryRow(ctx, "SELECT "+postColumns+" FROM posts WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return post, nil
}

func (r *PostRepo) FindByDate(ctx context.Context, date time.Time) (*model.Post, error) {
	post, err := scanPost(r.db.QueryRow(ctx, "SELECT "+postColumns+" FROM posts WHERE date = $1", date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find post by date: %w", err)
	}
	return post, nil
}

func (r *PostRepo) FindAll(ctx context.Context, limit int) ([]*model.Post, error) {
	query := "SELECT " + postColumns + " FROM posts ORDER BY date DESC, id"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return posts, nil
}

func (r *PostRepo) Update(ctx context.Context, id string, update model.PostUpdate) (*model.Post, error) {
	id, ok := parseID(id)
	if !ok {
		return nil, repository.ErrNotFound
	}

	query := "UPDATE posts SET "
	args := []interface{}{}
	i := 1

	set := func(column string, value interface{}) {
		query += column + " = $" + strconv.Itoa(i) + ", "
		args = append(args, value)
		i++
	}
	if update.Quote != nil {
		set("quote", *update.Quote)
	}
	if update.Reference != nil {
		set("reference", *update.Reference)
	}
	if update.Insight != nil {
		set("insight", *update.Insight)
	}
	if update.Remember != nil {
		query += "remember = NULLIF($" + strconv.Itoa(i) + ", ''), "
		args = append(args, *update.Remember)
		i++
	}
	if update.Date != nil {
		set("date", *update.Date)
	}

	query += "updated_at = now() WHERE id = $" + strconv.Itoa(i) + " RETURNING " + postColumns
	args = append(args, id)

	post, err := scanPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateDate
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	return post, nil
}

func (r *PostRepo) IncrLikes(ctx context.Context, id string) (int64, error) {
	id, ok := parseID(id)
	if !ok {
		return 0, repository.ErrNotFound
	}

	var likes int64
	if err := r.db.QueryRow(ctx, "UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes", id).Scan(&likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, fmt.Errorf("increment likes: %w", err)
	}
	return likes, nil
}

func (r *PostRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *PostRepo) Close(ctx context.Context) error {
	r.db.Close()
	return nil
}

// Open connects to postgres, ensures the schema exists and returns the store.
func Open(ctx context.Context, cfg config.DBConfig, logger *zap.Logger) (repository.PostStore, error) {
	db, err := DB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("Successfully connected to PostgreSQL")

	return NewPostRepo(db), nil
}
