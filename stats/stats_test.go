package stats_test

import (
	"testing"

	"github.com/michal-p/bloglist"
	"github.com/michal-p/bloglist/stats"
	"github.com/stretchr/testify/assert"
)

func blog(title, author string, likes int64) *bloglist.Blog {
	return &bloglist.Blog{Title: title, Author: author, Likes: likes}
}

// the canonical six post corpus used across the aggregate tests
func corpus() []*bloglist.Blog {
	return []*bloglist.Blog{
		blog("React patterns", "Michael Chan", 7),
		blog("Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5),
		blog("Canonical string reduction", "Edsger W. Dijkstra", 12),
		blog("First class tests", "Robert C. Martin", 10),
		blog("TDD harms architecture", "Robert C. Martin", 0),
		blog("Type wars", "Robert C. Martin", 2),
	}
}

func TestTotalLikes(t *testing.T) {
	t.Run("empty list sums to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), stats.TotalLikes(nil))
		assert.Equal(t, int64(0), stats.TotalLikes([]*bloglist.Blog{}))
	})

	t.Run("single blog equals its likes", func(t *testing.T) {
		assert.Equal(t, int64(5), stats.TotalLikes([]*bloglist.Blog{
			blog("Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5),
		}))
	})

	t.Run("bigger list sums all likes", func(t *testing.T) {
		assert.Equal(t, int64(36), stats.TotalLikes(corpus()))
	})
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list has no favorite", func(t *testing.T) {
		assert.Nil(t, stats.FavoriteBlog(nil))
	})

	t.Run("picks the most liked blog", func(t *testing.T) {
		favorite := stats.FavoriteBlog(corpus())

		assert.Equal(t, &stats.Favorite{
			Title:  "Canonical string reduction",
			Author: "Edsger W. Dijkstra",
			Likes:  12,
		}, favorite)
	})

	t.Run("ties resolve to the later blog", func(t *testing.T) {
		favorite := stats.FavoriteBlog([]*bloglist.Blog{
			blog("First class tests", "Robert C. Martin", 10),
			blog("First of the tied", "Michael Chan", 12),
			blog("Last of the tied", "Edsger W. Dijkstra", 12),
		})

		assert.Equal(t, "Last of the tied", favorite.Title)
	})

	t.Run("single zero like blog is still the favorite", func(t *testing.T) {
		favorite := stats.FavoriteBlog([]*bloglist.Blog{
			blog("TDD harms architecture", "Robert C. Martin", 0),
		})

		assert.NotNil(t, favorite)
		assert.Equal(t, int64(0), favorite.Likes)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("empty list has no top author", func(t *testing.T) {
		assert.Nil(t, stats.MostBlogs(nil))
	})

	t.Run("counts blogs per author", func(t *testing.T) {
		top := stats.MostBlogs(corpus())

		assert.Equal(t, &stats.AuthorBlogs{
			Author: "Robert C. Martin",
			Blogs:  3,
		}, top)
	})

	t.Run("ties resolve to the author seen first", func(t *testing.T) {
		top := stats.MostBlogs([]*bloglist.Blog{
			blog("React patterns", "Michael Chan", 7),
			blog("Canonical string reduction", "Edsger W. Dijkstra", 12),
			blog("Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5),
			blog("First class tests", "Robert C. Martin", 10),
			blog("Type wars", "Robert C. Martin", 2),
		})

		assert.Equal(t, "Edsger W. Dijkstra", top.Author)
		assert.Equal(t, 2, top.Blogs)
	})
}

func TestMostLikes(t *testing.T) {
	t.Run("empty list has no top author", func(t *testing.T) {
		assert.Nil(t, stats.MostLikes(nil))
	})

	t.Run("sums likes per author", func(t *testing.T) {
		top := stats.MostLikes(corpus())

		assert.Equal(t, &stats.AuthorLikes{
			Author: "Edsger W. Dijkstra",
			Likes:  17,
		}, top)
	})

	t.Run("ties resolve to the author seen first", func(t *testing.T) {
		top := stats.MostLikes([]*bloglist.Blog{
			blog("React patterns", "Michael Chan", 10),
			blog("Canonical string reduction", "Edsger W. Dijkstra", 4),
			blog("Go To Statement Considered Harmful", "Edsger W. Dijkstra", 6),
		})

		assert.Equal(t, "Michael Chan", top.Author)
		assert.Equal(t, int64(10), top.Likes)
	})

	t.Run("author of only zero like blogs is still a candidate", func(t *testing.T) {
		top := stats.MostLikes([]*bloglist.Blog{
			blog("TDD harms architecture", "Robert C. Martin", 0),
		})

		assert.Equal(t, &stats.AuthorLikes{
			Author: "Robert C. Martin",
			Likes:  0,
		}, top)
	})

	t.Run("blogs with empty author never form a group", func(t *testing.T) {
		assert.Nil(t, stats.MostLikes([]*bloglist.Blog{
			blog("Anonymous rant", "", 40),
		}))

		top := stats.MostLikes([]*bloglist.Blog{
			blog("Anonymous rant", "", 40),
			blog("React patterns", "Michael Chan", 7),
		})

		assert.Equal(t, "Michael Chan", top.Author)
	})
}
