// Package stats computes aggregate statistics over a blog collection.
// Every function is pure and total: it folds over the snapshot the caller
// passes in, never fails, and returns nil for empty input where the
// aggregate has no meaningful value.
package stats

import (
	"github.com/michal-p/bloglist"
)

// Favorite describes the blog with the highest like count.
type Favorite struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}

// AuthorBlogs pairs an author with how many blogs they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with their cumulative like count.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}

// TotalLikes sums like counts across the collection; 0 for empty input.
// The accumulator is 64-bit so summing millions of int32-sized counts
// cannot overflow.
func TotalLikes(blogs []*bloglist.Blog) int64 {
	var total int64
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the maximum like count, nil for empty
// input. Ties resolve last-wins: a later blog matching the running maximum
// replaces the current leader.
func FavoriteBlog(blogs []*bloglist.Blog) *Favorite {
	if len(blogs) == 0 {
		return nil
	}

	var favorite *Favorite
	for _, blog := range blogs {
		if favorite == nil || blog.Likes >= favorite.Likes {
			favorite = &Favorite{
				Title:  blog.Title,
				Author: blog.Author,
				Likes:  blog.Likes,
			}
		}
	}
	return favorite
}

// MostBlogs groups by exact author string and returns the author with the
// most blogs, nil for empty input. Ties resolve to the author that first
// appeared earliest in the collection.
func MostBlogs(blogs []*bloglist.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := map[string]int{}
	order := []string{}
	for _, blog := range blogs {
		if _, seen := counts[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		counts[blog.Author]++
	}

	var winner *AuthorBlogs
	for _, author := range order {
		if winner == nil || counts[author] > winner.Blogs {
			winner = &AuthorBlogs{Author: author, Blogs: counts[author]}
		}
	}
	return winner
}

// MostLikes groups by exact author string and returns the author with the
// highest cumulative like count, nil for empty input. Blogs with an empty
// author never form a group; zero-like blogs still count, contributing
// zero, so an author of only unliked blogs is still a candidate. Ties
// resolve to the author that first appeared earliest in the collection.
func MostLikes(blogs []*bloglist.Blog) *AuthorLikes {
	sums := map[string]int64{}
	order := []string{}
	for _, blog := range blogs {
		if blog.Author == "" {
			continue
		}
		if _, seen := sums[blog.Author]; !seen {
			order = append(order, blog.Author)
		}
		sums[blog.Author] += blog.Likes
	}

	// No groups formed is equivalent to empty input.
	var winner *AuthorLikes
	for _, author := range order {
		if winner == nil || sums[author] > winner.Likes {
			winner = &AuthorLikes{Author: author, Likes: sums[author]}
		}
	}
	return winner
}
