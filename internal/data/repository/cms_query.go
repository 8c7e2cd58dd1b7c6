package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/cms"
)

// FetchError is the single failure shape of every CMS read: which entity
// could not be fetched and why.
type FetchError struct {
	Entity string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Entity, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type decodable[T any] interface {
	*T
	entity.Decodable
}

func decodeObject(obj cms.Object, dst entity.Decodable) error {
	dst.SetBase(entity.Base{
		ID:         obj.ID,
		Slug:       obj.Slug,
		Title:      obj.Title,
		Content:    obj.Content,
		Type:       obj.Type,
		CreatedAt:  obj.CreatedAt,
		ModifiedAt: obj.ModifiedAt,
	})

	if len(obj.Metadata) == 0 || string(obj.Metadata) == "null" {
		return nil
	}
	if err := json.Unmarshal(obj.Metadata, dst.MetadataTarget()); err != nil {
		return fmt.Errorf("decode %s %q metadata: %w", obj.Type, obj.Slug, err)
	}
	return nil
}

// findAll runs q and decodes every object. A not-found answer is an empty
// result, anything else becomes a FetchError.
func findAll[T any, PT decodable[T]](ctx context.Context, client cms.Client, q cms.Query, what string) ([]T, error) {
	res, err := client.Find(ctx, q)
	if err != nil {
		if cms.IsNotFound(err) {
			return []T{}, nil
		}
		return nil, &FetchError{Entity: what, Err: err}
	}

	out := make([]T, 0, len(res.Objects))
	for _, obj := range res.Objects {
		var item T
		if err := decodeObject(obj, PT(&item)); err != nil {
			return nil, &FetchError{Entity: what, Err: err}
		}
		out = append(out, item)
	}
	return out, nil
}

// findOne is findAll for a single object; not found yields nil, nil.
func findOne[T any, PT decodable[T]](ctx context.Context, client cms.Client, q cms.Query, what string) (*T, error) {
	obj, err := client.FindOne(ctx, q)
	if err != nil {
		if cms.IsNotFound(err) {
			return nil, nil
		}
		return nil, &FetchError{Entity: what, Err: err}
	}

	var item T
	if err := decodeObject(*obj, PT(&item)); err != nil {
		return nil, &FetchError{Entity: what, Err: err}
	}
	return &item, nil
}
