package service

import (
	"context"

	"ripple/internal/models"
)

type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByIDWithPostsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	searchFn           func(context.Context, string, int, int) ([]models.User, error)
	listFn             func(context.Context, int, int) ([]models.User, error)
	deleteCascadeFn    func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithPosts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithPostsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByIDWithPostsFn: func(_ context.Context, id uint, _ int) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		searchFn:           func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
		listFn:             func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		deleteCascadeFn:    func(context.Context, uint) error { return nil },
	}
}

type relationRepoStub struct {
	createFollowFn    func(context.Context, uint, uint) (bool, error)
	deleteFollowFn    func(context.Context, uint, uint) (bool, error)
	isFollowingFn     func(context.Context, uint, uint) (bool, error)
	getFollowersFn    func(context.Context, uint) ([]models.User, error)
	getFollowingFn    func(context.Context, uint) ([]models.User, error)
	getFollowingIDsFn func(context.Context, uint) ([]uint, error)
	createBlockFn     func(context.Context, uint, uint) (bool, error)
	deleteBlockFn     func(context.Context, uint, uint) (bool, error)
	isBlockedFn       func(context.Context, uint, uint) (bool, error)
	getBlockedFn      func(context.Context, uint) ([]models.User, error)
	getBlockedIDsFn   func(context.Context, uint) ([]uint, error)
}

func (s *relationRepoStub) CreateFollow(ctx context.Context, a, b uint) (bool, error) {
	return s.createFollowFn(ctx, a, b)
}
func (s *relationRepoStub) DeleteFollow(ctx context.Context, a, b uint) (bool, error) {
	return s.deleteFollowFn(ctx, a, b)
}
func (s *relationRepoStub) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.isFollowingFn(ctx, a, b)
}
func (s *relationRepoStub) GetFollowers(ctx context.Context, id uint) ([]models.User, error) {
	return s.getFollowersFn(ctx, id)
}
func (s *relationRepoStub) GetFollowing(ctx context.Context, id uint) ([]models.User, error) {
	return s.getFollowingFn(ctx, id)
}
func (s *relationRepoStub) GetFollowingIDs(ctx context.Context, id uint) ([]uint, error) {
	return s.getFollowingIDsFn(ctx, id)
}
func (s *relationRepoStub) CreateBlock(ctx context.Context, a, b uint) (bool, error) {
	return s.createBlockFn(ctx, a, b)
}
func (s *relationRepoStub) DeleteBlock(ctx context.Context, a, b uint) (bool, error) {
	return s.deleteBlockFn(ctx, a, b)
}
func (s *relationRepoStub) IsBlocked(ctx context.Context, a, b uint) (bool, error) {
	return s.isBlockedFn(ctx, a, b)
}
func (s *relationRepoStub) GetBlocked(ctx context.Context, id uint) ([]models.User, error) {
	return s.getBlockedFn(ctx, id)
}
func (s *relationRepoStub) GetBlockedIDs(ctx context.Context, id uint) ([]uint, error) {
	return s.getBlockedIDsFn(ctx, id)
}

func noopRelationRepo() *relationRepoStub {
	return &relationRepoStub{
		createFollowFn:    func(context.Context, uint, uint) (bool, error) { return true, nil },
		deleteFollowFn:    func(context.Context, uint, uint) (bool, error) { return true, nil },
		isFollowingFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		getFollowersFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFollowingFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getFollowingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		createBlockFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		deleteBlockFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		isBlockedFn:       func(context.Context, uint, uint) (bool, error) { return false, nil },
		getBlockedFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getBlockedIDsFn:   func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	feedFn        func(context.Context, uint, int, int) ([]*models.Post, error)
	updateFn      func(context.Context, *models.Post) error
	deleteFn      func(context.Context, uint) error
	likeFn        func(context.Context, uint, uint) (bool, error)
	unlikeFn      func(context.Context, uint, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, viewerID)
}
func (s *postRepoStub) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	return s.feedFn(ctx, viewerID, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(context.Context, *models.Post) error { return nil },
		getByIDFn:     func(_ context.Context, id, _ uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getByUserIDFn: func(context.Context, uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		feedFn:        func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Post) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		likeFn:        func(context.Context, uint, uint) (bool, error) { return true, nil },
		unlikeFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint, uint) (*models.Comment, error)
	getByPostIDFn func(context.Context, uint, int, int, uint) ([]*models.Comment, error)
	updateFn      func(context.Context, *models.Comment) error
	deleteFn      func(context.Context, uint) error
	likeFn        func(context.Context, uint, uint) (bool, error)
	unlikeFn      func(context.Context, uint, uint) (bool, error)
	createReplyFn func(context.Context, *models.Reply) error
	getReplyFn    func(context.Context, uint, uint) (*models.Reply, error)
	updateReplyFn func(context.Context, *models.Reply) error
	deleteReplyFn func(context.Context, uint) error
	likeReplyFn   func(context.Context, uint, uint) (bool, error)
	unlikeReplyFn func(context.Context, uint, uint) (bool, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *commentRepoStub) GetByPostID(ctx context.Context, postID uint, limit, offset int, viewerID uint) ([]*models.Comment, error) {
	return s.getByPostIDFn(ctx, postID, limit, offset, viewerID)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) Like(ctx context.Context, userID, commentID uint) (bool, error) {
	return s.likeFn(ctx, userID, commentID)
}
func (s *commentRepoStub) Unlike(ctx context.Context, userID, commentID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, commentID)
}
func (s *commentRepoStub) CreateReply(ctx context.Context, r *models.Reply) error {
	return s.createReplyFn(ctx, r)
}
func (s *commentRepoStub) GetReply(ctx context.Context, commentID, replyID uint) (*models.Reply, error) {
	return s.getReplyFn(ctx, commentID, replyID)
}
func (s *commentRepoStub) UpdateReply(ctx context.Context, r *models.Reply) error {
	return s.updateReplyFn(ctx, r)
}
func (s *commentRepoStub) DeleteReply(ctx context.Context, replyID uint) error {
	return s.deleteReplyFn(ctx, replyID)
}
func (s *commentRepoStub) LikeReply(ctx context.Context, userID, replyID uint) (bool, error) {
	return s.likeReplyFn(ctx, userID, replyID)
}
func (s *commentRepoStub) UnlikeReply(ctx context.Context, userID, replyID uint) (bool, error) {
	return s.unlikeReplyFn(ctx, userID, replyID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(context.Context, *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, id, _ uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		getByPostIDFn: func(context.Context, uint, int, int, uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Comment) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		likeFn:        func(context.Context, uint, uint) (bool, error) { return true, nil },
		unlikeFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		createReplyFn: func(context.Context, *models.Reply) error { return nil },
		getReplyFn:    func(_ context.Context, _, id uint) (*models.Reply, error) { return &models.Reply{ID: id}, nil },
		updateReplyFn: func(context.Context, *models.Reply) error { return nil },
		deleteReplyFn: func(context.Context, uint) error { return nil },
		likeReplyFn:   func(context.Context, uint, uint) (bool, error) { return true, nil },
		unlikeReplyFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
	}
}

type storyRepoStub struct {
	createFn          func(context.Context, *models.Story) error
	getByIDFn         func(context.Context, uint) (*models.Story, error)
	getByUserIDFn     func(context.Context, uint) ([]models.Story, error)
	getFeedFn         func(context.Context, uint) ([]models.Story, error)
	deleteFn          func(context.Context, uint) error
	deleteAllByUserFn func(context.Context, uint) (int64, error)
}

func (s *storyRepoStub) Create(ctx context.Context, story *models.Story) error {
	return s.createFn(ctx, story)
}
func (s *storyRepoStub) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	return s.getByIDFn(ctx, id)
}
func (s *storyRepoStub) GetByUserID(ctx context.Context, userID uint) ([]models.Story, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *storyRepoStub) GetFeed(ctx context.Context, userID uint) ([]models.Story, error) {
	return s.getFeedFn(ctx, userID)
}
func (s *storyRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *storyRepoStub) DeleteAllByUser(ctx context.Context, userID uint) (int64, error) {
	return s.deleteAllByUserFn(ctx, userID)
}

func noopStoryRepo() *storyRepoStub {
	return &storyRepoStub{
		createFn:          func(context.Context, *models.Story) error { return nil },
		getByIDFn:         func(_ context.Context, id uint) (*models.Story, error) { return &models.Story{ID: id}, nil },
		getByUserIDFn:     func(context.Context, uint) ([]models.Story, error) { return nil, nil },
		getFeedFn:         func(context.Context, uint) ([]models.Story, error) { return nil, nil },
		deleteFn:          func(context.Context, uint) error { return nil },
		deleteAllByUserFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type conversationRepoStub struct {
	createFn       func(context.Context, *models.Conversation) error
	getByMembersFn func(context.Context, uint, uint) (*models.Conversation, error)
	getByUserIDFn  func(context.Context, uint) ([]models.Conversation, error)
}

func (s *conversationRepoStub) Create(ctx context.Context, c *models.Conversation) error {
	return s.createFn(ctx, c)
}
func (s *conversationRepoStub) GetByMembers(ctx context.Context, a, b uint) (*models.Conversation, error) {
	return s.getByMembersFn(ctx, a, b)
}
func (s *conversationRepoStub) GetByUserID(ctx context.Context, userID uint) ([]models.Conversation, error) {
	return s.getByUserIDFn(ctx, userID)
}

func noopConversationRepo() *conversationRepoStub {
	return &conversationRepoStub{
		createFn:       func(context.Context, *models.Conversation) error { return nil },
		getByMembersFn: func(context.Context, uint, uint) (*models.Conversation, error) { return nil, nil },
		getByUserIDFn:  func(context.Context, uint) ([]models.Conversation, error) { return nil, nil },
	}
}
