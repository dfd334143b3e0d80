// Command seed loads the sample blog posts into the configured database.
// Safe to run repeatedly: posts whose slug already exists are skipped.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"go-demandflo-backend/config"
	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/internal/repository/postgres"
	"go-demandflo-backend/pkg/database"
)

var samplePosts = []domain.BlogPost{
	{
		Title: "Guaranteed Appointments vs. Lead Lists: What's Actually Better for Your Pipeline?",
		Slug:  "guaranteed-appointments-vs-lead-lists",
		Excerpt: "You want more sales calls. Should you buy lead lists or get guaranteed appointments? " +
			"This guide breaks down the real costs, time investment, and ROI of each approach so you can choose what works for your stage.",
		Content: "You want more sales calls. There are two common paths:\n\n" +
			"Lead lists: you (or your team) do the outreach. You verify contacts, write emails, send, follow up, qualify, and book. You own the process and the workload.\n\n" +
			"Guaranteed appointments: a partner runs research, outreach, and scheduling. They agree to a clear outcome, like a set number of qualified meetings, and include replacements for no-shows. You focus on taking the calls.\n\n" +
			"Pick guaranteed appointments if you want fast results with low lift for your team. Pick lead lists if you want full control and can invest steady time each week. " +
			"Pick an in-house SDR if you're building a long-term sales engine and can wait for ramp.\n\n" +
			"Before you choose, run a simple ROI check: expected revenue per month equals meetings times show rate times qualified rate times close rate times average deal size. " +
			"Compare that to your total monthly cost for the option. If the revenue number clears your hurdle rate by a healthy margin, you're on the right track.",
		Category:  "Outbound Strategy",
		ReadTime:  "10 min read",
		ImageURL:  "https://images.unsplash.com/photo-1552664730-d307ca884978?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Published: true,
	},
	{
		Title: "How to Master Email Marketing in 2026: A Comprehensive Guide",
		Slug:  "email-marketing-guide",
		Excerpt: "By the end of this guide, you will be able to create and run successful email campaigns that will boost your business growth. " +
			"Learn everything from platform selection to deliverability optimization.",
		Content: "Email remains the highest-ROI channel in B2B when it's done with care.\n\n" +
			"Start with the foundation: pick a platform that supports segmentation and automation, warm your sending domains, and keep your lists verified and deduplicated.\n\n" +
			"Then focus on the work that compounds: short plain-text copy, one idea per email, one test at a time, and same-day replies to every positive signal.\n\n" +
			"Deliverability is the quiet killer. Weak domain setup, bounces, and spam traps lower opens and replies long before your copy gets a chance.",
		Category:  "Email Marketing",
		ReadTime:  "15 min read",
		ImageURL:  "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Published: true,
	},
	{
		Title: "Cold Email Marketing in 2026: A Conversation That Converts",
		Slug:  "cold-email-marketing-2025-conversation-converts",
		Excerpt: "Learn how to transform cold email from a numbers game into genuine conversations that convert. " +
			"Discover the 'Show Me You Know Me' approach that lifts open rates to 44% and reply rates to 15%.",
		Content: "Cold email stopped working as a numbers game years ago. What works now is relevance.\n\n" +
			"The 'Show Me You Know Me' approach means every email opens with something true and specific about the recipient: their launch, their hiring spree, their tech stack.\n\n" +
			"Teams that make that switch see open rates around 44% and reply rates around 15%, because the message reads like a colleague wrote it, not a sequence.",
		Category:  "Email Marketing",
		ReadTime:  "12 min read",
		ImageURL:  "https://images.unsplash.com/photo-1596526131083-e8c633c948d2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Published: true,
	},
	{
		Title: "The 3 Biggest Mistakes I See Companies Make with Outbound (And How to Fix Them)",
		Slug:  "3-biggest-mistakes-companies-make-outbound",
		Excerpt: "Discover the three critical errors that consistently kill outbound performance and learn how to transform " +
			"your approach from a numbers game into a predictable revenue driver.",
		Content: "After hundreds of outbound programs, the same three mistakes keep showing up.\n\n" +
			"One: treating outbound as a volume problem. More sends with stale data and generic copy just burns domains faster.\n\n" +
			"Two: ignoring data hygiene. Contacts change jobs constantly; unverified lists drag down every metric you care about.\n\n" +
			"Three: slow follow-up. A positive reply answered three days later is a dead reply. Fix these and outbound becomes a predictable revenue driver instead of a lottery.",
		Category:  "Outbound Strategy",
		ReadTime:  "8 min read",
		ImageURL:  "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Published: true,
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is required for seeding")
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, database.PoolOptions{
		MaxConns:       cfg.DBMaxConns,
		MinConns:       cfg.DBMinConns,
		ConnectTimeout: time.Duration(cfg.DBConnectTimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := postgres.NewBlogPostRepository(dbPool)
	ctx := context.Background()

	for _, post := range samplePosts {
		if _, err := repo.GetBySlug(ctx, post.Slug); err == nil {
			log.Printf("skipping %q: already seeded", post.Slug)
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			log.Fatalf("Failed to check slug %q: %v", post.Slug, err)
		}

		post.ID = uuid.New()
		now := time.Now()
		post.CreatedAt = now
		post.UpdatedAt = now
		if err := repo.Create(ctx, &post); err != nil {
			log.Fatalf("Failed to seed %q: %v", post.Slug, err)
		}
		log.Printf("seeded %q", post.Slug)
	}
}
