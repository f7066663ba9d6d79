package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/config"
	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const postsCollection = "posts"

type PostRepo struct {
	client *mongo.Client
	posts  *mongo.Collection
}

func NewPostRepo(client *mongo.Client, database string) *PostRepo {
	return &PostRepo{
		client: client,
		posts:  client.Database(database).Collection(postsCollection),
	}
}

// Open connects to mongo, ensures the unique date index and returns the store.
func Open(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (repository.PostStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	repo := NewPostRepo(client, cfg.Database)
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	logger.Info("Successfully connected to MongoDB")

	return repo, nil
}

func (r *PostRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.posts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("date_unique"),
	})
	if err != nil {
		return fmt.Errorf("create date index: %w", err)
	}
	return nil
}

func (r *PostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Likes = 0

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateDate
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &post, nil
}

func (r *PostRepo) findOne(ctx context.Context, filter bson.M) (*model.Post, error) {
	var post model.Post
	if err := r.posts.FindOne(ctx, filter).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	normalize(&post)
	return &post, nil
}

func (r *PostRepo) FindByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := r.findOne(ctx, bson.M{"_id": id})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return post, err
}

func (r *PostRepo) FindByDate(ctx context.Context, date time.Time) (*model.Post, error) {
	post, err := r.findOne(ctx, bson.M{"date": date})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find post by date: %w", err)
	}
	return post, err
}

func (r *PostRepo) FindAll(ctx context.Context, limit int) ([]*model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*model.Post{}
	for cursor.Next(ctx) {
		var post model.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		normalize(&post)
		posts = append(posts, &post)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return posts, nil
}

func (r *PostRepo) Update(ctx context.Context, id string, update model.PostUpdate) (*model.Post, error) {
	set := bson.M{"updated_at": time.Now().UTC().Truncate(time.Millisecond)}
	unset := bson.M{}

	if update.Quote != nil {
		set["quote"] = *update.Quote
	}
	if update.Reference != nil {
		set["reference"] = *update.Reference
	}
	if update.Insight != nil {
		set["insight"] = *update.Insight
	}
	if update.Remember != nil {
		if *update.Remember == "" {
			unset["remember"] = ""
		} else {
			set["remember"] = *update.Remember
		}
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}

	doc := bson.M{"$set": set}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}

	var post model.Post
	err := r.posts.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		doc,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateDate
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	normalize(&post)
	return &post, nil
}

func (r *PostRepo) IncrLikes(ctx context.Context, id string) (int64, error) {
	var result struct {
		Likes int64 `bson:"likes"`
	}
	err := r.posts.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"likes": 1}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"likes": 1}),
	).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, repository.ErrNotFound
		}
		return 0, fmt.Errorf("increment likes: %w", err)
	}

	return result.Likes, nil
}

func (r *PostRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *PostRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func normalize(post *model.Post) {
	post.Date = model.MidnightUTC(post.Date)
	post.CreatedAt = post.CreatedAt.UTC()
	post.UpdatedAt = post.UpdatedAt.UTC()
}
