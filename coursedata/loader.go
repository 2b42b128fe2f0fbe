package coursedata

import (
	"fmt"
	"io/fs"
	"sort"

	cfg "github.com/automoto/powderline/config"
	"github.com/lafriks/go-tiled"
)

// defaultAISpeed is used when a spawn object carries no speed property.
const defaultAISpeed = 2.5

// LoadCourse parses a TMX file and returns the course layout. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCourse(fsys fs.FS, tmxPath string) (*Course, error) {
	courseMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	course := &Course{
		Width:  courseMap.Width * courseMap.TileWidth,
		Height: courseMap.Height * courseMap.TileHeight,
	}

	playerFound := false
	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "Obstacles":
			for _, o := range og.Objects {
				kindName := o.Properties.GetString("kind")
				if kindName == "" {
					kindName = o.Type
				}
				kind, ok := cfg.ParseEntityKind(kindName)
				if !ok || !kind.IsStatic() {
					return nil, fmt.Errorf("course %s: object %d has invalid obstacle kind %q", tmxPath, o.ID, kindName)
				}
				course.Obstacles = append(course.Obstacles, ObstacleSpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: kind,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				kindName := o.Properties.GetString("kind")
				if kindName == "" {
					kindName = o.Type
				}
				switch kindName {
				case "player":
					course.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
					playerFound = true
				case "ai_skier":
					speed := o.Properties.GetFloat("speed")
					if speed <= 0 {
						speed = defaultAISpeed
					}
					course.AISpawns = append(course.AISpawns, AISpawn{
						X:     o.X,
						Y:     o.Y,
						Speed: speed,
					})
				default:
					return nil, fmt.Errorf("course %s: object %d has invalid spawn kind %q", tmxPath, o.ID, kindName)
				}
			}
		}
	}

	if !playerFound {
		return nil, fmt.Errorf("course %s: no player spawn", tmxPath)
	}

	// Sort obstacles top-to-bottom for deterministic spawn order
	sort.Slice(course.Obstacles, func(i, j int) bool {
		if course.Obstacles[i].Y != course.Obstacles[j].Y {
			return course.Obstacles[i].Y < course.Obstacles[j].Y
		}
		return course.Obstacles[i].X < course.Obstacles[j].X
	})

	return course, nil
}
