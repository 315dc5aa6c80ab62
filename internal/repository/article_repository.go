package repository

import (
	"database/sql"
	"time"

	"github.com/Javirum/news-summarizer/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

const upsertQuery = `
	INSERT INTO articles(title, source, url, summary, sentiment, published_at, processed_at)
	VALUES(?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(url) DO UPDATE SET
		title = excluded.title,
		source = excluded.source,
		summary = excluded.summary,
		sentiment = excluded.sentiment,
		published_at = excluded.published_at,
		processed_at = excluded.processed_at
`

// Save upserts a single article by URL. ProcessedAt is set here, not by the
// caller.
func (r *ArticleRepository) Save(article *model.ArticleRecord) error {
	article.ProcessedAt = time.Now().UTC()
	_, err := r.db.Exec(upsertQuery,
		article.Title, article.Source, article.URL, article.Summary,
		article.Sentiment, article.PublishedAt, article.ProcessedAt.Format(time.RFC3339))
	return err
}

// SaveAll upserts a batch of articles in one transaction, all stamped with
// the same processing time.
func (r *ArticleRepository) SaveAll(articles []model.ArticleRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range articles {
		articles[i].ProcessedAt = now
		a := &articles[i]
		_, err := stmt.Exec(a.Title, a.Source, a.URL, a.Summary,
			a.Sentiment, a.PublishedAt, now.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ArticleRepository) GetByURL(url string) (*model.ArticleRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, title, source, url, summary, sentiment, published_at, processed_at
		FROM articles
		WHERE url = ?
	`, url)
	return scanArticle(row)
}

func (r *ArticleRepository) GetByID(id int64) (*model.ArticleRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, title, source, url, summary, sentiment, published_at, processed_at
		FROM articles
		WHERE id = ?
	`, id)
	return scanArticle(row)
}

// GetAll returns all articles, most recently processed first.
func (r *ArticleRepository) GetAll() ([]model.ArticleRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, title, source, url, summary, sentiment, published_at, processed_at
		FROM articles
		ORDER BY processed_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// Search returns articles whose title or summary contains keyword as a
// substring, most recently processed first.
func (r *ArticleRepository) Search(keyword string) ([]model.ArticleRecord, error) {
	pattern := "%" + keyword + "%"
	rows, err := r.db.Query(`
		SELECT id, title, source, url, summary, sentiment, published_at, processed_at
		FROM articles
		WHERE title LIKE ? OR summary LIKE ?
		ORDER BY processed_at DESC, id DESC
	`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&total)
	return total, err
}

func scanArticle(row *sql.Row) (*model.ArticleRecord, error) {
	var a model.ArticleRecord
	var processedAt string
	err := row.Scan(&a.ID, &a.Title, &a.Source, &a.URL, &a.Summary, &a.Sentiment, &a.PublishedAt, &processedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	a.ProcessedAt, _ = time.Parse(time.RFC3339, processedAt)
	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]model.ArticleRecord, error) {
	var articles []model.ArticleRecord
	for rows.Next() {
		var a model.ArticleRecord
		var processedAt string
		err := rows.Scan(&a.ID, &a.Title, &a.Source, &a.URL, &a.Summary, &a.Sentiment, &a.PublishedAt, &processedAt)
		if err != nil {
			return nil, err
		}
		a.ProcessedAt, _ = time.Parse(time.RFC3339, processedAt)
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
