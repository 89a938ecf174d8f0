package store

const Schema = `
CREATE TABLE IF NOT EXISTS artists (
	id INTEGER PRIMARY KEY,
	name TEXT UNIQUE NOT NULL
);

-- The same title may exist once per artist.
CREATE TABLE IF NOT EXISTS albums (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	artist_id INTEGER NOT NULL,
	year INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (artist_id) REFERENCES artists(id),
	UNIQUE (title, artist_id)
);

CREATE INDEX IF NOT EXISTS idx_albums_title ON albums(title);
CREATE INDEX IF NOT EXISTS idx_albums_year ON albums(year);

CREATE TABLE IF NOT EXISTS formats (
	id INTEGER PRIMARY KEY,
	format_name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS genres (
	id INTEGER PRIMARY KEY,
	genre_name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS album_formats (
	album_id INTEGER NOT NULL,
	format_id INTEGER NOT NULL,
	PRIMARY KEY (album_id, format_id),
	FOREIGN KEY (album_id) REFERENCES albums(id),
	FOREIGN KEY (format_id) REFERENCES formats(id)
);

CREATE TABLE IF NOT EXISTS album_genres (
	album_id INTEGER NOT NULL,
	genre_id INTEGER NOT NULL,
	PRIMARY KEY (album_id, genre_id),
	FOREIGN KEY (album_id) REFERENCES albums(id),
	FOREIGN KEY (genre_id) REFERENCES genres(id)
);
`
