package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"poster-board/pkg/auth"
	"poster-board/pkg/config"
	"poster-board/pkg/database"
	"poster-board/pkg/logger"
	"poster-board/pkg/response"
	"poster-board/pkg/s3"
	"poster-board/services/poster/internal/media"
	"poster-board/services/poster/internal/repo/persistent"
	"poster-board/services/poster/internal/usecase"
)

func main() {
	var (
		users     = flag.Int("users", 3, "number of demo authors")
		perUser   = flag.Int("posters", 2, "posters created per author")
		withImage = flag.Bool("images", false, "download a demo image for the first section of every poster")
		imageURL  = flag.String("image-url", "https://cataas.com/cat", "image source used with -images")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	posterUseCase := usecase.NewPosterUseCase(
		persistent.NewPosterRepository(db),
		nil,
		media.NewStore(s3Client, persistent.NewMediaRepository(db), cfg.MediaMaxBytes, log),
		auth.NewContextGate(),
		nil,
		cfg.RequestTimeout,
		log,
	)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	created := 0

	for u := 1; u <= *users; u++ {
		ctx := auth.WithActor(context.Background(), auth.Actor{UserID: int64(u), Role: "user"})

		for i := 1; i <= *perUser; i++ {
			form := demoForm(u, i)
			if *withImage {
				file, err := fetchImage(httpClient, *imageURL)
				if err != nil {
					log.Warn("Skipping image for poster %d of user %d: %v", i, u, err)
				} else {
					form.Sections[0].File = file
				}
			}

			res, err := posterUseCase.CreatePoster(ctx, form)
			if err != nil {
				log.Error("Auth gate rejected seed user %d: %v", u, err)
				continue
			}
			if res.Status != response.Success {
				log.Error("Failed to create poster %d for user %d: %s", i, u, res.Message)
				continue
			}
			log.Info("Created poster %d for user %d", res.ID, u)
			created++
		}
	}

	log.Info("Seeded %d posters", created)
}

func demoForm(user, index int) usecase.PosterForm {
	form := usecase.PosterForm{
		Author:       fmt.Sprintf("Demo Author %d", user),
		CreationDate: time.Now().AddDate(0, 0, -index).Format("2006-01-02"),
		Headline:     fmt.Sprintf("Poster #%d by author %d", index, user),
		MetaData:     "Seeded for local development",
	}
	form.Sections[0] = usecase.SectionInput{
		Headline: "Introduction",
		Text:     "What this poster is about.",
		Alt:      "Demo illustration",
	}
	form.Sections[1] = usecase.SectionInput{
		Headline: "Details",
		Text:     "The interesting part.",
	}
	// Every other poster leaves section 3 empty.
	if index%2 == 1 {
		form.Sections[2] = usecase.SectionInput{
			Headline: "Conclusion",
			Text:     "Thanks for reading.",
		}
	}
	return form
}

// fetchImage downloads url and wraps the body as an uploaded form file.
func fetchImage(client *http.Client, url string) (*multipart.FileHeader, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("s1img", "seed.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(int64(len(data)) + 1<<20)
	if err != nil {
		return nil, err
	}
	return form.File["s1img"][0], nil
}
