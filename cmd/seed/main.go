package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spaceatlas/atlas-backend/internal/config"
	"github.com/spaceatlas/atlas-backend/internal/database"
	"github.com/spaceatlas/atlas-backend/internal/logger"
	"github.com/spaceatlas/atlas-backend/internal/model"
	"github.com/spaceatlas/atlas-backend/internal/repository"
)

var seedBodies = []model.CelestialBody{
	{
		Name:          "Mercury",
		Type:          model.BodyTypePlanet,
		Description:   "The smallest planet in our solar system and the closest to the Sun. Its surface is covered with craters and experiences extreme temperature swings between day and night.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/d/d9/Mercury_in_true_color.jpg",
		DiscoveredBy:  "Ancient astronomers",
		DiscoveryDate: "Known since antiquity",
		FunFact:       "A year on Mercury lasts only 88 Earth days, but a single day lasts 176 Earth days.",
	},
	{
		Name:          "Venus",
		Type:          model.BodyTypePlanet,
		Description:   "The second planet from the Sun and the hottest in the solar system, wrapped in a thick atmosphere of carbon dioxide with clouds of sulfuric acid.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/e/e5/Venus-real_color.jpg",
		DiscoveredBy:  "Ancient astronomers",
		DiscoveryDate: "Known since antiquity",
		FunFact:       "Venus rotates backwards compared to most planets, so the Sun rises in the west.",
	},
	{
		Name:          "Mars",
		Type:          model.BodyTypePlanet,
		Description:   "The fourth planet from the Sun, known as the Red Planet for the iron oxide on its surface. It hosts the largest volcano in the solar system, Olympus Mons.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/0/02/OSIRIS_Mars_true_color.jpg",
		DiscoveredBy:  "Ancient astronomers",
		DiscoveryDate: "Known since antiquity",
		FunFact:       "Dust storms on Mars can engulf the entire planet and last for months.",
	},
	{
		Name:          "Jupiter",
		Type:          model.BodyTypePlanet,
		Description:   "The largest planet in the solar system, a gas giant with a mass more than twice that of all other planets combined. Its Great Red Spot is a centuries-old storm.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/2/2b/Jupiter_and_its_shrunken_Great_Red_Spot.jpg",
		DiscoveredBy:  "Ancient astronomers",
		DiscoveryDate: "Known since antiquity",
		FunFact:       "Jupiter has the shortest day of all planets, rotating once every 10 hours.",
	},
	{
		Name:          "Europa",
		Type:          model.BodyTypeMoon,
		Description:   "One of Jupiter's Galilean moons, covered by a smooth shell of water ice. Beneath the frozen crust lies a global ocean that may hold more water than all of Earth's oceans.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/5/54/Europa-moon.jpg",
		DiscoveredBy:  "Galileo Galilei",
		DiscoveryDate: "January 8, 1610",
		FunFact:       "Europa's subsurface ocean makes it one of the most promising places to search for life.",
	},
	{
		Name:          "Titan",
		Type:          model.BodyTypeMoon,
		Description:   "Saturn's largest moon and the only moon in the solar system with a dense atmosphere. Rivers and lakes of liquid methane flow across its frigid surface.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/4/44/Titan_in_true_color.jpg",
		DiscoveredBy:  "Christiaan Huygens",
		DiscoveryDate: "March 25, 1655",
		FunFact:       "Titan's atmosphere is so thick and its gravity so low that humans could fly by flapping strapped-on wings.",
	},
	{
		Name:          "Ceres",
		Type:          model.BodyTypeDwarfPlanet,
		Description:   "The largest object in the asteroid belt between Mars and Jupiter and the only dwarf planet in the inner solar system. It may harbor briny water beneath its surface.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/7/76/Ceres_-_RC3_-_Haulani_Crater_%2822381131691%29.jpg",
		DiscoveredBy:  "Giuseppe Piazzi",
		DiscoveryDate: "January 1, 1801",
		FunFact:       "Ceres was classified as a planet, then an asteroid, before becoming a dwarf planet in 2006.",
	},
	{
		Name:          "Pluto",
		Type:          model.BodyTypeDwarfPlanet,
		Description:   "The best-known dwarf planet, orbiting in the distant Kuiper Belt. Its heart-shaped nitrogen glacier, Sputnik Planitia, was revealed by the New Horizons flyby in 2015.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/e/ef/Pluto_in_True_Color_-_High-Res.jpg",
		DiscoveredBy:  "Clyde Tombaugh",
		DiscoveryDate: "February 18, 1930",
		FunFact:       "A year on Pluto lasts 248 Earth years; it has not completed one orbit since its discovery.",
	},
	{
		Name:          "Vesta",
		Type:          model.BodyTypeAsteroid,
		Description:   "The second-largest body in the asteroid belt and the brightest asteroid visible from Earth. Its southern hemisphere bears a giant impact crater nearly as wide as Vesta itself.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/0/00/Vesta_full_mosaic.jpg",
		DiscoveredBy:  "Heinrich Wilhelm Olbers",
		DiscoveryDate: "March 29, 1807",
		FunFact:       "Pieces of Vesta knocked off by impacts have landed on Earth as meteorites.",
	},
	{
		Name:          "Halley's Comet",
		Type:          model.BodyTypeComet,
		Description:   "The most famous periodic comet, visible from Earth every 75 to 79 years. Its appearances have been recorded by astronomers since at least 240 BC.",
		ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/2/2a/Lspn_comet_halley.jpg",
		DiscoveredBy:  "Edmond Halley",
		DiscoveryDate: "1705 (periodicity determined)",
		FunFact:       "Halley's Comet will next be visible from Earth in 2061.",
	},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	bodyRepo := repository.NewBodyRepository(pool)

	fmt.Println("=== Seeding Celestial Bodies ===")

	if err := bodyRepo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear existing bodies")
	}
	fmt.Println("Cleared existing celestial bodies")

	for i := range seedBodies {
		b := seedBodies[i]
		if err := bodyRepo.Create(ctx, &b); err != nil {
			log.Fatal().Err(err).Str("name", b.Name).Msg("Failed to insert body")
		}
	}
	fmt.Printf("Inserted %d celestial bodies\n", len(seedBodies))

	summary, err := bodyRepo.CountByType(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to summarize catalog")
	}

	fmt.Println("\nDatabase Summary:")
	for _, t := range model.BodyTypes {
		if n, ok := summary[t]; ok {
			fmt.Printf("   %s: %d\n", t, n)
		}
	}
	fmt.Println("\nDatabase seeding complete")
}
