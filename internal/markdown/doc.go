// Package markdown implements the article corpus workflows: front-matter
// parsing and round-tripping, filename convention handling, filesystem
// discovery, and Goldmark-based rendering and fence extraction.
package markdown
