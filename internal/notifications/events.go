package notifications

// Event types pushed to clients over the websocket.
const (
	EventNewFollower        = "new_follower"
	EventPostLiked          = "post_liked"
	EventNewComment         = "new_comment"
	EventCommentLiked       = "comment_liked"
	EventNewReply           = "new_reply"
	EventConversationOpened = "conversation_opened"
)

// Event is the envelope every realtime message uses on the wire.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// NewFollowerEvent announces that actor started following the recipient.
func NewFollowerEvent(actorID uint, actorUsername string) Event {
	return Event{
		Type: EventNewFollower,
		Payload: map[string]any{
			"user_id":  actorID,
			"username": actorUsername,
		},
	}
}

// PostLikedEvent announces a like on the recipient's post.
func PostLikedEvent(actorID uint, actorUsername string, postID uint) Event {
	return Event{
		Type: EventPostLiked,
		Payload: map[string]any{
			"user_id":  actorID,
			"username": actorUsername,
			"post_id":  postID,
		},
	}
}

// NewCommentEvent announces a comment on the recipient's post.
func NewCommentEvent(actorID uint, actorUsername string, postID, commentID uint) Event {
	return Event{
		Type: EventNewComment,
		Payload: map[string]any{
			"user_id":    actorID,
			"username":   actorUsername,
			"post_id":    postID,
			"comment_id": commentID,
		},
	}
}

// CommentLikedEvent announces a like on the recipient's comment.
func CommentLikedEvent(actorID uint, actorUsername string, commentID uint) Event {
	return Event{
		Type: EventCommentLiked,
		Payload: map[string]any{
			"user_id":    actorID,
			"username":   actorUsername,
			"comment_id": commentID,
		},
	}
}

// NewReplyEvent announces a reply under the recipient's comment.
func NewReplyEvent(actorID uint, actorUsername string, commentID, replyID uint) Event {
	return Event{
		Type: EventNewReply,
		Payload: map[string]any{
			"user_id":    actorID,
			"username":   actorUsername,
			"comment_id": commentID,
			"reply_id":   replyID,
		},
	}
}

// ConversationOpenedEvent announces that actor opened a conversation with the
// recipient.
func ConversationOpenedEvent(actorID uint, actorUsername string, conversationID uint) Event {
	return Event{
		Type: EventConversationOpened,
		Payload: map[string]any{
			"user_id":         actorID,
			"username":        actorUsername,
			"conversation_id": conversationID,
		},
	}
}
