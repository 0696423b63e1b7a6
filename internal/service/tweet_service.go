package service

import (
	"fmt"

	"github.com/danil-baybakov/app-clone-twitter/config"
	"github.com/danil-baybakov/app-clone-twitter/internal/model"
	"github.com/danil-baybakov/app-clone-twitter/internal/repository/interfaces"
	serviceErrors "github.com/danil-baybakov/app-clone-twitter/internal/service/errors"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"
	"go.uber.org/zap"
)

// TweetServiceInterface 定义推文服务接口
type TweetServiceInterface interface {
	AddTweet(userID int, content string) (int, error)
	GetFeed() ([]model.FeedTweet, error)
	GetTweetByID(id int) (*model.Tweet, error)
	GetTweetByIDAndUserID(id, userID int) (*model.Tweet, error)
	DeleteTweetByID(id int) (bool, error)
}

// TweetService 处理与推文相关的业务逻辑
type TweetService struct {
	tweetRepo interfaces.TweetRepository
	mediaRepo interfaces.MediaRepository
	likeRepo  interfaces.LikeRepository
	userRepo  interfaces.UserRepository
}

// NewTweetService 创建一个新的 TweetService 实例
func NewTweetService(
	tweetRepo interfaces.TweetRepository,
	mediaRepo interfaces.MediaRepository,
	likeRepo interfaces.LikeRepository,
	userRepo interfaces.UserRepository,
) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		mediaRepo: mediaRepo,
		likeRepo:  likeRepo,
		userRepo:  userRepo,
	}
}

// AddTweet 创建一条新推文，返回新推文 id
func (s *TweetService) AddTweet(userID int, content string) (int, error) {
	tweet := &model.Tweet{
		UserID:  userID,
		Content: content,
	}
	if err := s.tweetRepo.Create(tweet); err != nil {
		return 0, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"添加推文数据时数据库操作失败", err)
	}
	return tweet.ID, nil
}

// GetFeed 获取信息流：全部推文按 id 升序，
// 每条拼装作者、附件链接和点赞列表
func (s *TweetService) GetFeed() ([]model.FeedTweet, error) {
	tweets, err := s.tweetRepo.FindAll()
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			"获取推文列表数据时数据库操作失败", err)
	}

	// 单次拼装内缓存已查过的用户，避免重复查询
	userCache := make(map[int]*model.User)
	getUser := func(id int) (*model.User, error) {
		if user, ok := userCache[id]; ok {
			return user, nil
		}
		user, err := s.userRepo.FindByID(id)
		if err != nil {
			return nil, err
		}
		userCache[id] = user
		return user, nil
	}

	feed := make([]model.FeedTweet, 0, len(tweets))
	for _, tweet := range tweets {
		author, err := getUser(tweet.UserID)
		if err != nil {
			return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
				fmt.Sprintf("获取推文作者数据时数据库操作失败 tweet_id=%d", tweet.ID), err)
		}
		if author == nil {
			// 外键保证作者存在，这里只做防御
			util.Logger.Warn("推文作者不存在，跳过该推文", zap.Int("tweet_id", tweet.ID))
			continue
		}

		medias, err := s.mediaRepo.FindByTweetID(tweet.ID)
		if err != nil {
			return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
				fmt.Sprintf("获取推文媒体文件数据时数据库操作失败 tweet_id=%d", tweet.ID), err)
		}
		attachments := make([]string, 0, len(medias))
		for _, media := range medias {
			attachments = append(attachments,
				fmt.Sprintf("%s/medias/%d", config.AppConfig.BaseURI, media.ID))
		}

		likes, err := s.likeRepo.FindByTweetID(tweet.ID)
		if err != nil {
			return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
				fmt.Sprintf("获取推文点赞数据时数据库操作失败 tweet_id=%d", tweet.ID), err)
		}
		likeBriefs := make([]model.LikeBrief, 0, len(likes))
		for _, like := range likes {
			likeUser, err := getUser(like.UserID)
			if err != nil {
				return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
					fmt.Sprintf("获取点赞用户数据时数据库操作失败 tweet_id=%d", tweet.ID), err)
			}
			if likeUser == nil {
				continue
			}
			likeBriefs = append(likeBriefs, model.LikeBrief{
				UserID: likeUser.ID,
				Name:   likeUser.Name,
			})
		}

		feed = append(feed, model.FeedTweet{
			ID:          tweet.ID,
			Content:     tweet.Content,
			Attachments: attachments,
			Author: model.UserBrief{
				ID:   author.ID,
				Name: author.Name,
			},
			Likes: likeBriefs,
		})
	}

	return feed, nil
}

// GetTweetByID 通过 id 获取推文，未找到返回 nil
func (s *TweetService) GetTweetByID(id int) (*model.Tweet, error) {
	tweet, err := s.tweetRepo.FindByID(id)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取推文数据时数据库操作失败 id=%d", id), err)
	}
	return tweet, nil
}

// GetTweetByIDAndUserID 通过推文 id 和作者 id 获取推文，用于归属校验
func (s *TweetService) GetTweetByIDAndUserID(id, userID int) (*model.Tweet, error) {
	tweet, err := s.tweetRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("获取推文数据时数据库操作失败 id=%d user_id=%d", id, userID), err)
	}
	return tweet, nil
}

// DeleteTweetByID 删除推文，媒体文件和点赞级联删除
// 返回是否有记录被删除
func (s *TweetService) DeleteTweetByID(id int) (bool, error) {
	removed, err := s.tweetRepo.DeleteByID(id)
	if err != nil {
		return false, serviceErrors.Wrap(serviceErrors.ErrDatabase,
			fmt.Sprintf("删除推文数据时数据库操作失败 id=%d", id), err)
	}
	return removed, nil
}
