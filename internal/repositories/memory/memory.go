// Package memory provides in-memory implementations of the repository
// interfaces. They back service tests and mirror the relational semantics of
// the Postgres implementations: composite-key uniqueness, counter updates
// and cascading post deletes.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/blognity/backend/internal/models"
	"gorm.io/gorm"
)

// Store holds all tables behind one lock
type Store struct {
	mu            sync.RWMutex
	users         map[uint]*models.User
	posts         map[uint]*models.Post
	likes         map[[2]uint]*models.Like    // (postID, userID)
	bookmarks     map[[2]uint]*models.Bookmark // (userID, postID)
	follows       map[[2]uint]*models.Follow   // (followerID, followingID)
	comments      map[uint]*models.Comment
	notifications map[uint]*models.Notification
	tags          map[string]*models.Tag // by slug
	nextID        uint
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uint]*models.User),
		posts:         make(map[uint]*models.Post),
		likes:         make(map[[2]uint]*models.Like),
		bookmarks:     make(map[[2]uint]*models.Bookmark),
		follows:       make(map[[2]uint]*models.Follow),
		comments:      make(map[uint]*models.Comment),
		notifications: make(map[uint]*models.Notification),
		tags:          make(map[string]*models.Tag),
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) Users() *UserRepository                 { return &UserRepository{s} }
func (s *Store) Posts() *PostRepository                 { return &PostRepository{s} }
func (s *Store) Likes() *LikeRepository                 { return &LikeRepository{s} }
func (s *Store) Bookmarks() *BookmarkRepository         { return &BookmarkRepository{s} }
func (s *Store) Follows() *FollowRepository             { return &FollowRepository{s} }
func (s *Store) Comments() *CommentRepository           { return &CommentRepository{s} }
func (s *Store) Notifications() *NotificationRepository { return &NotificationRepository{s} }
func (s *Store) Tags() *TagRepository                   { return &TagRepository{s} }

// --- users ---

type UserRepository struct{ s *Store }

func (r *UserRepository) CreateUser(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email || (user.Username != "" && u.Username == user.Username) {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.s.id()
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) GetUserByID(id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *UserRepository) GetUsers() ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) UpdateUser(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) DeleteUser(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r *UserRepository) SearchUsers(query string) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q := strings.ToLower(query)
	var users []models.User
	for _, u := range r.s.users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Username), q) {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *UserRepository) SetPaidAccess(id uint, paid bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.HasPaidAccess = paid
	return nil
}

// --- posts ---

type PostRepository struct{ s *Store }

func (r *PostRepository) withAuthor(p *models.Post) models.Post {
	cp := *p
	if author, ok := r.s.users[p.AuthorID]; ok {
		a := *author
		cp.Author = &a
	}
	return cp
}

func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.posts {
		if p.Slug == post.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	post.ID = r.s.id()
	post.CreatedAt = time.Now()
	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if post.Visibility == "" {
		post.Visibility = models.VisibilityPublic
	}
	cp := *post
	r.s.posts[post.ID] = &cp
	return nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.withAuthor(p)
	return &cp, nil
}

func (r *PostRepository) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.posts {
		if p.Slug == slug {
			cp := r.withAuthor(p)
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func sortNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		pi, pj := posts[i].PublishedAt, posts[j].PublishedAt
		if pi != nil && pj != nil && !pi.Equal(*pj) {
			return pi.After(*pj)
		}
		return posts[i].ID > posts[j].ID
	})
}

func paginate(posts []models.Post, offset, limit int) []models.Post {
	if offset >= len(posts) {
		return []models.Post{}
	}
	end := len(posts)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return posts[offset:end]
}

func (r *PostRepository) GetAllPosts(ctx context.Context, offset, limit int) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	posts := []models.Post{}
	for _, p := range r.s.posts {
		if p.Status == models.StatusPublished && p.Visibility == models.VisibilityPublic {
			posts = append(posts, r.withAuthor(p))
		}
	}
	sortNewestFirst(posts)
	return paginate(posts, offset, limit), nil
}

func (r *PostRepository) GetAllPostsUnfiltered(ctx context.Context, offset, limit int) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	posts := []models.Post{}
	for _, p := range r.s.posts {
		posts = append(posts, r.withAuthor(p))
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return paginate(posts, offset, limit), nil
}

func (r *PostRepository) GetPostsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	posts := []models.Post{}
	for _, p := range r.s.posts {
		if p.AuthorID == authorID && p.Status == models.StatusPublished && p.Visibility == models.VisibilityPublic {
			posts = append(posts, r.withAuthor(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (r *PostRepository) GetPostsByAuthorIDs(ctx context.Context, authorIDs []uint, offset, limit int) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	wanted := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		wanted[id] = true
	}
	posts := []models.Post{}
	for _, p := range r.s.posts {
		if wanted[p.AuthorID] && p.Status == models.StatusPublished && p.Visibility == models.VisibilityPublic {
			posts = append(posts, r.withAuthor(p))
		}
	}
	sortNewestFirst(posts)
	return paginate(posts, offset, limit), nil
}

func (r *PostRepository) GetExclusivePosts(ctx context.Context) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	posts := []models.Post{}
	for _, p := range r.s.posts {
		if p.Visibility == models.VisibilityPrivate && p.Status == models.StatusPublished {
			posts = append(posts, r.withAuthor(p))
		}
	}
	sortNewestFirst(posts)
	return posts, nil
}

func (r *PostRepository) GetTrendingPosts(ctx context.Context, limit int) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	posts := []models.Post{}
	for _, p := range r.s.posts {
		if p.Status == models.StatusPublished && p.Visibility == models.VisibilityPublic {
			posts = append(posts, r.withAuthor(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].LikesCount != posts[j].LikesCount {
			return posts[i].LikesCount > posts[j].LikesCount
		}
		return posts[i].ID > posts[j].ID
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *PostRepository) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q := strings.ToLower(query)
	posts := []models.Post{}
	for _, p := range r.s.posts {
		if p.Status != models.StatusPublished || p.Visibility != models.VisibilityPublic {
			continue
		}
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Content), q) {
			posts = append(posts, r.withAuthor(p))
		}
	}
	return posts, nil
}

func (r *PostRepository) UpdatePost(ctx context.Context, post *models.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, p := range r.s.posts {
		if p.ID != post.ID && p.Slug == post.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	post.UpdatedAt = time.Now()
	cp := *post
	cp.Author = nil
	r.s.posts[post.ID] = &cp
	return nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.posts, id)
	// cascade, as the schema-level FK constraints do
	for k, l := range r.s.likes {
		if l.PostID == id {
			delete(r.s.likes, k)
		}
	}
	for k, b := range r.s.bookmarks {
		if b.PostID == id {
			delete(r.s.bookmarks, k)
		}
	}
	for k, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, k)
		}
	}
	return nil
}

func (r *PostRepository) IncrementViewsCount(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.ViewsCount++
	return nil
}

func (r *PostRepository) AttachTag(ctx context.Context, postID uint, tag *models.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[postID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, t := range p.Tags {
		if t.Slug == tag.Slug {
			return nil
		}
	}
	p.Tags = append(p.Tags, *tag)
	return nil
}

// --- likes ---

type LikeRepository struct{ s *Store }

func (r *LikeRepository) Toggle(ctx context.Context, postID, userID uint) (bool, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[postID]
	if !ok {
		return false, 0, gorm.ErrRecordNotFound
	}
	key := [2]uint{postID, userID}
	if _, exists := r.s.likes[key]; exists {
		delete(r.s.likes, key)
		if post.LikesCount > 0 {
			post.LikesCount--
		}
		return false, post.LikesCount, nil
	}
	r.s.likes[key] = &models.Like{ID: r.s.id(), PostID: postID, UserID: userID, CreatedAt: time.Now()}
	post.LikesCount++
	return true, post.LikesCount, nil
}

func (r *LikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.likes[[2]uint{postID, userID}]
	return ok, nil
}

func (r *LikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.posts[postID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return p.LikesCount, nil
}

func (r *LikeRepository) GetLikedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make(map[uint]bool)
	for _, id := range postIDs {
		if _, ok := r.s.likes[[2]uint{id, userID}]; ok {
			result[id] = true
		}
	}
	return result, nil
}

// --- bookmarks ---

type BookmarkRepository struct{ s *Store }

func (r *BookmarkRepository) Toggle(ctx context.Context, postID, userID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]uint{userID, postID}
	if _, exists := r.s.bookmarks[key]; exists {
		delete(r.s.bookmarks, key)
		return false, nil
	}
	r.s.bookmarks[key] = &models.Bookmark{ID: r.s.id(), UserID: userID, PostID: postID, CreatedAt: time.Now()}
	return true, nil
}

func (r *BookmarkRepository) IsPostBookmarked(userID, postID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.bookmarks[[2]uint{userID, postID}]
	return ok, nil
}

func (r *BookmarkRepository) GetBookmarkedPosts(userID uint) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var marks []*models.Bookmark
	for _, b := range r.s.bookmarks {
		if b.UserID == userID {
			marks = append(marks, b)
		}
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].ID > marks[j].ID })
	posts := []models.Post{}
	pr := &PostRepository{r.s}
	for _, b := range marks {
		if p, ok := r.s.posts[b.PostID]; ok {
			posts = append(posts, pr.withAuthor(p))
		}
	}
	return posts, nil
}

func (r *BookmarkRepository) GetBookmarkedPostIDs(userID uint, postIDs []uint) (map[uint]bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	result := make(map[uint]bool)
	for _, id := range postIDs {
		if _, ok := r.s.bookmarks[[2]uint{userID, id}]; ok {
			result[id] = true
		}
	}
	return result, nil
}

// --- follows ---

type FollowRepository struct{ s *Store }

func (r *FollowRepository) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := [2]uint{followerID, followingID}
	if _, exists := r.s.follows[key]; exists {
		delete(r.s.follows, key)
		return false, nil
	}
	r.s.follows[key] = &models.Follow{ID: r.s.id(), FollowerID: followerID, FollowingID: followingID, CreatedAt: time.Now()}
	return true, nil
}

func (r *FollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.follows[[2]uint{followerID, followingID}]
	return ok, nil
}

func (r *FollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var users []models.User
	for _, f := range r.s.follows {
		if f.FollowingID == userID {
			if u, ok := r.s.users[f.FollowerID]; ok {
				users = append(users, *u)
			}
		}
	}
	return users, nil
}

func (r *FollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var users []models.User
	for _, f := range r.s.follows {
		if f.FollowerID == userID {
			if u, ok := r.s.users[f.FollowingID]; ok {
				users = append(users, *u)
			}
		}
	}
	return users, nil
}

func (r *FollowRepository) GetFollowersCount(userID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, f := range r.s.follows {
		if f.FollowingID == userID {
			count++
		}
	}
	return count, nil
}

func (r *FollowRepository) GetFollowingCount(userID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, f := range r.s.follows {
		if f.FollowerID == userID {
			count++
		}
	}
	return count, nil
}

func (r *FollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []uint
	for _, f := range r.s.follows {
		if f.FollowerID == userID {
			ids = append(ids, f.FollowingID)
		}
	}
	return ids, nil
}

func (r *FollowRepository) GetTopFollowed(limit int) ([]models.TopAuthor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[uint]int64)
	for _, f := range r.s.follows {
		counts[f.FollowingID]++
	}
	authors := make([]models.TopAuthor, 0, len(r.s.users))
	for _, u := range r.s.users {
		authors = append(authors, models.TopAuthor{User: *u, FollowersCount: counts[u.ID]})
	}
	sort.Slice(authors, func(i, j int) bool {
		if authors[i].FollowersCount != authors[j].FollowersCount {
			return authors[i].FollowersCount > authors[j].FollowersCount
		}
		return authors[i].ID < authors[j].ID
	})
	if limit > 0 && len(authors) > limit {
		authors = authors[:limit]
	}
	return authors, nil
}

// --- comments ---

type CommentRepository struct{ s *Store }

func (r *CommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	post, ok := r.s.posts[comment.PostID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	comment.ID = r.s.id()
	comment.CreatedAt = time.Now()
	cp := *comment
	r.s.comments[comment.ID] = &cp
	post.CommentsCount++
	return nil
}

func (r *CommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	comments := []models.Comment{}
	for _, c := range r.s.comments {
		if c.PostID == postID && c.ParentID == nil {
			cp := *c
			if u, ok := r.s.users[c.UserID]; ok {
				a := *u
				cp.Author = &a
			}
			comments = append(comments, cp)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return comments, nil
}

func (r *CommentRepository) UpdateComment(comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	comment.UpdatedAt = time.Now()
	cp := *comment
	cp.Author = nil
	r.s.comments[comment.ID] = &cp
	return nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.comments, id)
	if post, ok := r.s.posts[c.PostID]; ok && post.CommentsCount > 0 {
		post.CommentsCount--
	}
	return nil
}

// --- notifications ---

type NotificationRepository struct{ s *Store }

func (r *NotificationRepository) CreateNotification(notification *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	notification.ID = r.s.id()
	notification.CreatedAt = time.Now()
	cp := *notification
	r.s.notifications[notification.ID] = &cp
	return nil
}

func (r *NotificationRepository) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := []models.Notification{}
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID {
			all = append(all, *n)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	offset := (page - 1) * limit
	if offset >= len(all) {
		return []models.Notification{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *NotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkAsRead(notificationID, recipientID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[notificationID]
	if !ok || n.RecipientID != recipientID {
		return gorm.ErrRecordNotFound
	}
	n.IsRead = true
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(recipientID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

// --- tags ---

type TagRepository struct{ s *Store }

func (r *TagRepository) UpsertBySlug(ctx context.Context, name, slug string) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t, ok := r.s.tags[slug]; ok {
		cp := *t
		return &cp, nil
	}
	tag := &models.Tag{ID: r.s.id(), Name: name, Slug: slug}
	r.s.tags[slug] = tag
	cp := *tag
	return &cp, nil
}

func (r *TagRepository) GetTagBySlug(slug string) (*models.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.tags[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *TagRepository) GetTags() ([]models.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	tags := make([]models.Tag, 0, len(r.s.tags))
	for _, t := range r.s.tags {
		tags = append(tags, *t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}
