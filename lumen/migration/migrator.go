package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vantagelearn/lumen/lumen/database/models"
)

// Migrator copies the legacy Mongo backend into Postgres. Lessons go first
// so that questions and completion logs can be re-keyed from the legacy
// string key to the new serial id. Reruns are safe: every insert skips rows
// that already exist.
type Migrator struct {
	pgDB    *bun.DB
	mongoDB *mongo.Database

	batchSize int
	stats     MigrationStats

	// Optional pgx COPY fast path for the users table.
	useCopy bool
	pool    *pgxpool.Pool

	collNames map[string]string

	// legacy lesson key -> new serial id, filled while importing lessons
	lessonIDs map[string]int64
	// legacy email -> new user id, filled while importing users
	userIDs map[string]int64
}

func NewMigrator(pgDB *bun.DB) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		batchSize: 1000,
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
		collNames: map[string]string{
			"users":       "users",
			"lessons":     "lessons",
			"questions":   "questions",
			"completions": "completions",
		},
		lessonIDs: make(map[string]int64),
		userIDs:   make(map[string]int64),
	}
}

func (m *Migrator) UseMongo(client *mongo.Client, dbName string) {
	m.mongoDB = client.Database(dbName)
}

func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// SetUseCopy enables COPY FROM mode using pgx for the users table.
func (m *Migrator) SetUseCopy(v bool) { m.useCopy = v }

// UsePool sets the pgx pool for COPY operations.
func (m *Migrator) UsePool(pool *pgxpool.Pool) { m.pool = pool }

func (m *Migrator) SetCollectionName(kind, name string) {
	if _, ok := m.collNames[kind]; ok && name != "" {
		m.collNames[kind] = name
	}
}

func (m *Migrator) coll(kind string) *mongo.Collection {
	return m.mongoDB.Collection(m.collNames[kind])
}

// Run imports everything in dependency order.
func (m *Migrator) Run(ctx context.Context) error {
	if m.mongoDB == nil {
		return fmt.Errorf("no mongo database configured")
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"lessons", m.ImportLessons},
		{"questions", m.ImportQuestions},
		{"users", m.ImportUsers},
		{"completions", m.ImportCompletions},
	}
	for _, step := range steps {
		slog.Info("Migration step started",
			slog.String("type", "sys"),
			slog.String("step", step.name))
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("%s import failed: %w", step.name, err)
		}
	}

	m.logFinalStats()
	return nil
}

// ImportLessons copies the lesson catalog and builds the key to id map.
func (m *Migrator) ImportLessons(ctx context.Context) error {
	cur, err := m.coll("lessons").Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	stats := m.stats.table("lessons")
	for cur.Next(ctx) {
		var legacy LegacyLesson
		if err := cur.Decode(&legacy); err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		lesson := convertLesson(legacy)
		res, err := m.pgDB.NewInsert().
			Model(lesson).
			On("CONFLICT (subject, topic, title) DO NOTHING").
			Returning("id").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert lesson %q: %w", legacy.Key, err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			// Already migrated; look the id up instead.
			if err := m.pgDB.NewSelect().
				Model(lesson).
				Column("id").
				Where("subject = ? AND topic = ? AND title = ?", lesson.Subject, lesson.Topic, lesson.Title).
				Scan(ctx); err != nil {
				return fmt.Errorf("failed to resolve existing lesson %q: %w", legacy.Key, err)
			}
			stats.Skipped++
		} else {
			stats.Inserted++
		}
		m.lessonIDs[lessonKey(legacy)] = lesson.ID
	}
	return cur.Err()
}

// ImportQuestions batches question rows, re-keyed onto the new lesson ids.
func (m *Migrator) ImportQuestions(ctx context.Context) error {
	cur, err := m.coll("questions").Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	stats := m.stats.table("questions")
	var batch []*models.Question
	for cur.Next(ctx) {
		var legacy LegacyQuestion
		if err := cur.Decode(&legacy); err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		lessonID, ok := m.lessonIDs[legacy.LessonKey]
		if !ok {
			slog.Warn("Question references unknown lesson",
				slog.String("type", "sys"),
				slog.String("lesson_key", legacy.LessonKey))
			stats.Skipped++
			continue
		}

		batch = append(batch, convertQuestion(legacy, lessonID))
		if len(batch) >= m.batchSize {
			if err := m.insertQuestions(ctx, batch, stats); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return m.insertQuestions(ctx, batch, stats)
	}
	return nil
}

func (m *Migrator) insertQuestions(ctx context.Context, batch []*models.Question, stats *TableStats) error {
	res, err := m.pgDB.NewInsert().
		Model(&batch).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert question batch: %w", err)
	}
	rows, _ := res.RowsAffected()
	stats.Inserted += rows
	return nil
}

// ImportUsers copies accounts. With COPY mode enabled the rows stream
// through a temp table and land with one upsert, which is the fast path for
// the largest collection.
func (m *Migrator) ImportUsers(ctx context.Context) error {
	cur, err := m.coll("users").Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	stats := m.stats.table("users")
	var batch []*models.User
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		var err error
		if m.useCopy && m.pool != nil {
			err = m.copyUsers(ctx, batch)
		} else {
			err = m.insertUsers(ctx, batch)
		}
		if err != nil {
			return err
		}
		stats.Inserted += int64(len(batch))
		batch = batch[:0]
		return nil
	}

	for cur.Next(ctx) {
		var legacy LegacyUser
		if err := cur.Decode(&legacy); err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		if legacy.Email == "" {
			stats.Skipped++
			continue
		}
		batch = append(batch, convertUser(legacy))
		if len(batch) >= m.batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}
	return m.loadUserIDs(ctx)
}

func (m *Migrator) insertUsers(ctx context.Context, batch []*models.User) error {
	_, err := m.pgDB.NewInsert().
		Model(&batch).
		On("CONFLICT (email) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert user batch: %w", err)
	}
	return nil
}

func (m *Migrator) copyUsers(ctx context.Context, batch []*models.User) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	createSQL := `CREATE TEMP TABLE tmp_users (
		email TEXT,
		username TEXT,
		password_hash TEXT,
		is_admin BOOLEAN,
		xp BIGINT,
		streak INT,
		gold BIGINT,
		daily_xp_earned BIGINT,
		daily_lessons_completed INT,
		completed_missions TEXT,
		subjects TEXT,
		last_mission_reset TIMESTAMPTZ,
		last_lesson_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ
	) ON COMMIT DROP;`
	if _, err := tx.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create temp table: %w", err)
	}

	data := make([][]any, 0, len(batch))
	for _, u := range batch {
		missions, _ := json.Marshal(u.CompletedMissions)
		subjects, _ := json.Marshal(u.Subjects)
		data = append(data, []any{
			u.Email, u.Username, u.PasswordHash, u.IsAdmin, u.XP, u.Streak, u.Gold,
			u.DailyXPEarned, u.DailyLessonsCompleted, string(missions), string(subjects),
			nullableTime(u.LastMissionReset), nullableTime(u.LastLessonAt), u.CreatedAt, u.UpdatedAt,
		})
	}
	cols := []string{
		"email", "username", "password_hash", "is_admin", "xp", "streak", "gold",
		"daily_xp_earned", "daily_lessons_completed", "completed_missions", "subjects",
		"last_mission_reset", "last_lesson_at", "created_at", "updated_at",
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"tmp_users"}, cols, pgx.CopyFromRows(data)); err != nil {
		return fmt.Errorf("copy to temp failed: %w", err)
	}

	upsertSQL := `INSERT INTO users (
		email, username, password_hash, is_admin, xp, streak, gold,
		daily_xp_earned, daily_lessons_completed, completed_missions, subjects,
		last_mission_reset, last_lesson_at, created_at, updated_at
	)
	SELECT email, username, password_hash, is_admin, xp, streak, gold,
		daily_xp_earned, daily_lessons_completed, completed_missions::jsonb, subjects::jsonb,
		last_mission_reset, last_lesson_at, created_at, updated_at
	FROM tmp_users
	ON CONFLICT (email) DO NOTHING`
	if _, err := tx.Exec(ctx, upsertSQL); err != nil {
		return fmt.Errorf("upsert from temp failed: %w", err)
	}
	return tx.Commit(ctx)
}

func (m *Migrator) loadUserIDs(ctx context.Context) error {
	var users []*models.User
	if err := m.pgDB.NewSelect().
		Model(&users).
		Column("id", "email").
		Scan(ctx); err != nil {
		return fmt.Errorf("failed to load user ids: %w", err)
	}
	for _, u := range users {
		m.userIDs[strings.ToLower(u.Email)] = u.ID
	}
	return nil
}

// ImportCompletions rebuilds the lesson log with fresh snowflake ids.
func (m *Migrator) ImportCompletions(ctx context.Context) error {
	cur, err := m.coll("completions").Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	stats := m.stats.table("lesson_logs")
	var batch []*models.LessonLog
	var seq int64
	for cur.Next(ctx) {
		var legacy LegacyCompletion
		if err := cur.Decode(&legacy); err != nil {
			stats.Skipped++
			continue
		}
		stats.Read++

		userID, userOK := m.userIDs[strings.ToLower(legacy.Email)]
		lessonID, lessonOK := m.lessonIDs[legacy.LessonKey]
		if !userOK || !lessonOK {
			stats.Skipped++
			continue
		}

		when := legacy.Date
		if when.IsZero() {
			when = time.Now()
		}
		// Timestamp snowflakes leave their low bits zero; fold a sequence
		// in so completions sharing a legacy date still get distinct ids.
		seq++
		batch = append(batch, &models.LessonLog{
			ID:        int64(snowflake.New(when)) | (seq & 0x3FFFFF),
			UserID:    userID,
			LessonID:  lessonID,
			XP:        int64(legacy.XP),
			CreatedAt: when,
		})
		if len(batch) >= m.batchSize {
			if err := m.insertLogs(ctx, batch, stats); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return m.insertLogs(ctx, batch, stats)
	}
	return nil
}

func (m *Migrator) insertLogs(ctx context.Context, batch []*models.LessonLog, stats *TableStats) error {
	res, err := m.pgDB.NewInsert().
		Model(&batch).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert lesson log batch: %w", err)
	}
	rows, _ := res.RowsAffected()
	stats.Inserted += rows
	return nil
}

func (m *Migrator) logFinalStats() {
	elapsed := time.Since(m.stats.StartTime)
	for name, t := range m.stats.Tables {
		slog.Info("Migration table summary",
			slog.String("type", "sys"),
			slog.String("table", name),
			slog.Int64("read", t.Read),
			slog.Int64("inserted", t.Inserted),
			slog.Int64("skipped", t.Skipped))
	}
	slog.Info("Migration completed",
		slog.String("type", "sys"),
		slog.Duration("elapsed", elapsed))
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
