package models

import "encoding/json"

type Announcement struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

type rawAnnouncement struct {
	ID         upstreamID   `json:"id"`
	CourseID   upstreamID   `json:"courseId"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Message    string       `json:"message"`
	Author     *authorField `json:"author"`
	AuthorName string       `json:"author_name"`
	CreatedAt  string       `json:"createdAt"`
	Created    string       `json:"created_at"`
}

func ParseAnnouncements(data []byte) ([]Announcement, error) {
	var raws []rawAnnouncement
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]Announcement, 0, len(raws))
	for _, r := range raws {
		out = append(out, Announcement{
			ID:        r.ID.String(),
			CourseID:  r.CourseID.String(),
			Title:     r.Title,
			Content:   firstNonEmpty(r.Content, r.Message),
			Author:    resolveAuthor(r.Author, r.AuthorName),
			CreatedAt: firstNonEmpty(r.CreatedAt, r.Created),
		})
	}
	return out, nil
}
