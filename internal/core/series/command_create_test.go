// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/serieshub/internal/core/series"
	"github.com/taibuivan/serieshub/pkg/pointer"
)

/*
TestCreate_WithImage verifies that the processed path is stored and returned.
*/
func TestCreate_WithImage(t *testing.T) {
	store := newMemoryStore()
	images := &fakeImages{}
	command := series.NewCreateCommand(store, store, images, discardLogger())

	result, err := command.Execute(context.Background(), series.CreateRequest{
		Payload: validPayload(),
		Image:   []byte("raw-image"),
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.False(t, result.HasWarnings())
	require.NotNil(t, result.Series.Image)
	assert.Equal(t, "series/1/img-1.jpg", *result.Series.Image)
	assert.Equal(t, 1, store.rankRefreshes)
}

/*
TestCreate_ImageFailureIsBestEffort verifies that a failing image step only
produces a warning and leaves the image unset.
*/
func TestCreate_ImageFailureIsBestEffort(t *testing.T) {
	store := newMemoryStore()
	images := &fakeImages{processErr: errors.New("unsupported format")}
	command := series.NewCreateCommand(store, store, images, discardLogger())

	result, err := command.Execute(context.Background(), series.CreateRequest{
		Payload: validPayload(),
		Image:   []byte("not-an-image"),
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, []string{"Image could not be processed"}, result.Warnings)
	assert.Nil(t, result.Series.Image)
	assert.Zero(t, store.called("UpdateImage"))
	assert.Equal(t, 1, store.rankRefreshes)
}

/*
TestCreate_AttachFailureReleasesObject verifies that an image stored but not
attached is deleted again.
*/
func TestCreate_AttachFailureReleasesObject(t *testing.T) {
	store := newMemoryStore()
	store.fail["UpdateImage"] = errors.New("deadlock detected")
	images := &fakeImages{}
	command := series.NewCreateCommand(store, store, images, discardLogger())

	result, err := command.Execute(context.Background(), series.CreateRequest{
		Payload: validPayload(),
		Image:   []byte("raw-image"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Image could not be attached"}, result.Warnings)
	assert.Equal(t, images.saved, images.deleted)
	assert.Nil(t, result.Series.Image)
}

/*
TestCreate_ExistingKeyKeepsStoredImage verifies that without new bytes the
stored image survives the update path.
*/
func TestCreate_ExistingKeyKeepsStoredImage(t *testing.T) {
	store := newMemoryStore()
	id := store.seed(series.Series{Name: "One Piece", Year: pointer.To(1997), DemographyID: 1, Image: pointer.To("series/1/old.jpg")})
	command := series.NewCreateCommand(store, store, &fakeImages{}, discardLogger())

	result, err := command.Execute(context.Background(), series.CreateRequest{Payload: validPayload()})

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, id, result.ID)
	assert.Equal(t, "series/1/old.jpg", *result.Series.Image)
}

/*
TestCreate_ReplacesPreviousImage verifies that a new image on the update path
releases the previous object.
*/
func TestCreate_ReplacesPreviousImage(t *testing.T) {
	store := newMemoryStore()
	store.seed(series.Series{Name: "One Piece", Year: pointer.To(1997), DemographyID: 1, Image: pointer.To("series/1/old.jpg")})
	images := &fakeImages{}
	command := series.NewCreateCommand(store, store, images, discardLogger())

	result, err := command.Execute(context.Background(), series.CreateRequest{Payload: validPayload(), Image: []byte("raw")})

	require.NoError(t, err)
	assert.Equal(t, "series/1/img-1.jpg", *result.Series.Image)
	assert.Equal(t, []string{"series/1/old.jpg"}, images.deleted)
}
