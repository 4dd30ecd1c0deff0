package models

import "encoding/json"

type ForumThread struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
}

type ForumPost struct {
	ID        string `json:"id"`
	ThreadID  string `json:"thread_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// The forums resource has been seen nesting the author as an object or
// inlining the name under several keys. authorField handles all of them so
// no call site has to guess again.
type authorField struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

func (a authorField) display() string {
	return firstNonEmpty(a.Name, a.FullName, a.Username)
}

type rawThread struct {
	ID         upstreamID   `json:"id"`
	CourseID   upstreamID   `json:"courseId"`
	Title      string       `json:"title"`
	Subject    string       `json:"subject"`
	Author     *authorField `json:"author"`
	AuthorName string       `json:"author_name"`
	Creator    string       `json:"creator"`
}

type rawPost struct {
	ID         upstreamID   `json:"id"`
	ThreadID   upstreamID   `json:"forumId"`
	Author     *authorField `json:"author"`
	AuthorName string       `json:"author_name"`
	Creator    string       `json:"creator"`
	Content    string       `json:"content"`
	Body       string       `json:"body"`
	CreatedAt  string       `json:"createdAt"`
	Created    string       `json:"created_at"`
}

func ParseForumThreads(data []byte) ([]ForumThread, error) {
	var raws []rawThread
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]ForumThread, 0, len(raws))
	for _, r := range raws {
		out = append(out, ForumThread{
			ID:       r.ID.String(),
			CourseID: r.CourseID.String(),
			Title:    firstNonEmpty(r.Title, r.Subject),
			Author:   resolveAuthor(r.Author, r.AuthorName, r.Creator),
		})
	}
	return out, nil
}

func ParseForumPosts(data []byte) ([]ForumPost, error) {
	var raws []rawPost
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]ForumPost, 0, len(raws))
	for _, r := range raws {
		out = append(out, ForumPost{
			ID:        r.ID.String(),
			ThreadID:  r.ThreadID.String(),
			Author:    resolveAuthor(r.Author, r.AuthorName, r.Creator),
			Content:   firstNonEmpty(r.Content, r.Body),
			CreatedAt: firstNonEmpty(r.CreatedAt, r.Created),
		})
	}
	return out, nil
}

func resolveAuthor(author *authorField, fallbacks ...string) string {
	if author != nil {
		if name := author.display(); name != "" {
			return name
		}
	}
	return firstNonEmpty(fallbacks...)
}
