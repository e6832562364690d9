package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS project (
	id         INTEGER PRIMARY KEY CHECK(id = 1),
	name       TEXT NOT NULL DEFAULT '',
	location   TEXT NOT NULL DEFAULT '',
	owner      TEXT NOT NULL DEFAULT '',
	budget     REAL NOT NULL DEFAULT 0,
	start_date TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS timeline_steps (
	id         TEXT PRIMARY KEY,
	label      TEXT NOT NULL,
	date       TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('completed', 'current', 'pending')),
	progress   INTEGER NOT NULL DEFAULT 0,
	contractor TEXT NOT NULL DEFAULT '',
	estimate   TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS finance_items (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL DEFAULT '',
	name       TEXT NOT NULL,
	vendor     TEXT NOT NULL DEFAULT '',
	quantity   TEXT NOT NULL DEFAULT '',
	unit_price REAL NOT NULL DEFAULT 0,
	total      REAL NOT NULL DEFAULT 0,
	status     TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('paid', 'pending', 'overdue')),
	position   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS daily_photos (
	id        TEXT PRIMARY KEY,
	url       TEXT NOT NULL,
	timestamp TEXT NOT NULL DEFAULT '',
	ai_tag    TEXT NOT NULL DEFAULT '',
	ai_color  TEXT NOT NULL DEFAULT '',
	phase     TEXT NOT NULL DEFAULT '',
	position  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS contractors (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	specialty TEXT NOT NULL DEFAULT '',
	phone     TEXT NOT NULL DEFAULT '',
	email     TEXT NOT NULL DEFAULT '',
	rating    INTEGER NOT NULL DEFAULT 0 CHECK(rating BETWEEN 0 AND 5),
	status    TEXT NOT NULL DEFAULT 'active' CHECK(status IN ('active', 'completed', 'paused')),
	notes     TEXT NOT NULL DEFAULT '',
	position  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS documents (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT 'other',
	url         TEXT NOT NULL DEFAULT '',
	file_size   TEXT NOT NULL DEFAULT '',
	upload_date TEXT NOT NULL DEFAULT '',
	notes       TEXT NOT NULL DEFAULT '',
	position    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS issues (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	priority      TEXT NOT NULL DEFAULT 'medium' CHECK(priority IN ('high', 'medium', 'low')),
	status        TEXT NOT NULL DEFAULT 'open' CHECK(status IN ('open', 'in_progress', 'resolved')),
	assignee      TEXT NOT NULL DEFAULT '',
	photo_url     TEXT NOT NULL DEFAULT '',
	created_date  TEXT NOT NULL DEFAULT '',
	resolved_date TEXT NOT NULL DEFAULT '',
	position      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ai_logs (
	id       TEXT PRIMARY KEY,
	type     TEXT NOT NULL,
	time     TEXT NOT NULL DEFAULT '',
	content  TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_timeline_steps_position ON timeline_steps(position);
CREATE INDEX IF NOT EXISTS idx_finance_items_position ON finance_items(position);
CREATE INDEX IF NOT EXISTS idx_finance_items_status ON finance_items(status);
CREATE INDEX IF NOT EXISTS idx_daily_photos_position ON daily_photos(position);
CREATE INDEX IF NOT EXISTS idx_contractors_position ON contractors(position);
CREATE INDEX IF NOT EXISTS idx_documents_position ON documents(position);
CREATE INDEX IF NOT EXISTS idx_documents_category ON documents(category);
CREATE INDEX IF NOT EXISTS idx_issues_position ON issues(position);
CREATE INDEX IF NOT EXISTS idx_issues_status ON issues(status);
CREATE INDEX IF NOT EXISTS idx_ai_logs_position ON ai_logs(position);

INSERT INTO project (id) VALUES (1);
INSERT INTO settings (key, value) VALUES ('dark_mode', '0');

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
