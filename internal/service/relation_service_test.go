package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"
)

func TestRelationService_FollowSelf(t *testing.T) {
	svc := NewRelationService(noopRelationRepo(), noopUserRepo())

	err := svc.Follow(context.Background(), 1, 1)
	if err == nil {
		t.Fatal("expected error when following yourself")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "INVALID_OPERATION" {
		t.Errorf("expected INVALID_OPERATION, got %v", err)
	}
}

func TestRelationService_FollowMissingTarget(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewRelationService(noopRelationRepo(), users)

	err := svc.Follow(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestRelationService_FollowTwice(t *testing.T) {
	relations := noopRelationRepo()
	relations.createFollowFn = func(context.Context, uint, uint) (bool, error) {
		return false, nil
	}
	svc := NewRelationService(relations, noopUserRepo())

	err := svc.Follow(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "ALREADY_EXISTS" {
		t.Errorf("expected ALREADY_EXISTS, got %v", err)
	}
}

func TestRelationService_FollowSuccess(t *testing.T) {
	var gotFollower, gotFollowee uint
	relations := noopRelationRepo()
	relations.createFollowFn = func(_ context.Context, follower, followee uint) (bool, error) {
		gotFollower, gotFollowee = follower, followee
		return true, nil
	}
	svc := NewRelationService(relations, noopUserRepo())

	if err := svc.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFollower != 1 || gotFollowee != 2 {
		t.Errorf("expected edge 1 -> 2, got %d -> %d", gotFollower, gotFollowee)
	}
}

func TestRelationService_UnfollowAbsentEdge(t *testing.T) {
	relations := noopRelationRepo()
	relations.deleteFollowFn = func(context.Context, uint, uint) (bool, error) {
		return false, nil
	}
	svc := NewRelationService(relations, noopUserRepo())

	err := svc.Unfollow(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestRelationService_BlockSelf(t *testing.T) {
	svc := NewRelationService(noopRelationRepo(), noopUserRepo())

	err := svc.Block(context.Background(), 7, 7)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "INVALID_OPERATION" {
		t.Errorf("expected INVALID_OPERATION, got %v", err)
	}
}

func TestRelationService_BlockTwice(t *testing.T) {
	relations := noopRelationRepo()
	relations.createBlockFn = func(context.Context, uint, uint) (bool, error) {
		return false, nil
	}
	svc := NewRelationService(relations, noopUserRepo())

	err := svc.Block(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "ALREADY_EXISTS" {
		t.Errorf("expected ALREADY_EXISTS, got %v", err)
	}
}

func TestRelationService_UnblockAbsentEdge(t *testing.T) {
	relations := noopRelationRepo()
	relations.deleteBlockFn = func(context.Context, uint, uint) (bool, error) {
		return false, nil
	}
	svc := NewRelationService(relations, noopUserRepo())

	err := svc.Unblock(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestRelationService_GetFollowersMissingUser(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewRelationService(noopRelationRepo(), users)

	_, err := svc.GetFollowers(context.Background(), 99)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestRelationService_GetFollowing(t *testing.T) {
	relations := noopRelationRepo()
	relations.getFollowingFn = func(context.Context, uint) ([]models.User, error) {
		return []models.User{{ID: 2}, {ID: 3}}, nil
	}
	svc := NewRelationService(relations, noopUserRepo())

	following, err := svc.GetFollowing(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(following) != 2 {
		t.Errorf("expected 2 followed users, got %d", len(following))
	}
}
