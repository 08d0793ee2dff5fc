package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haven-tools/savedit/savedit"
)

var crewCmd = &cobra.Command{
	Use:   "crew",
	Short: "Edit crew members",
}

var crewAttrCmd = &cobra.Command{
	Use:   "attr <character-id> <attribute-id> <value>",
	Short: "Set an attribute value",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return crewMutation(args[0], func(doc *savedit.SaveDocument, charID int) error {
			attrID, err := parseInt(args[1], "attribute id")
			if err != nil {
				return err
			}
			value, err := parseInt(args[2], "value")
			if err != nil {
				return err
			}
			return doc.UpdateCharacterAttribute(charID, attrID, value)
		})
	},
}

var crewSkillCmd = &cobra.Command{
	Use:   "skill <character-id> <skill-id> <level>",
	Short: "Set a skill level",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return crewMutation(args[0], func(doc *savedit.SaveDocument, charID int) error {
			skillID, err := parseInt(args[1], "skill id")
			if err != nil {
				return err
			}
			level, err := parseInt(args[2], "level")
			if err != nil {
				return err
			}
			return doc.UpdateCharacterSkill(charID, skillID, level)
		})
	},
}

var (
	maxAttrValue  int
	maxSkillLevel int
)

var crewMaxCmd = &cobra.Command{
	Use:   "max <character-id>",
	Short: "Set every known attribute and skill at once",
	Long: `Set every attribute and skill the catalog knows to fixed values,
the usual "make this crew member good at everything" edit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return crewMutation(args[0], func(doc *savedit.SaveDocument, charID int) error {
			if err := doc.SetAllAttributes(charID, maxAttrValue); err != nil {
				return err
			}
			return doc.SetAllSkills(charID, maxSkillLevel)
		})
	},
}

var crewTraitCmd = &cobra.Command{
	Use:   "trait <add|remove> <character-id> <trait-id>",
	Short: "Add or remove a trait",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return crewMutation(args[1], func(doc *savedit.SaveDocument, charID int) error {
			traitID, err := parseInt(args[2], "trait id")
			if err != nil {
				return err
			}
			switch args[0] {
			case "add":
				return doc.AddTrait(charID, traitID)
			case "remove":
				return doc.RemoveTrait(charID, traitID)
			default:
				return fmt.Errorf("unknown trait action %q (use add or remove)", args[0])
			}
		})
	},
}

var crewConditionCmd = &cobra.Command{
	Use:   "condition remove <character-id> <condition-id>",
	Short: "Remove a condition",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "remove" {
			return fmt.Errorf("unknown condition action %q (only remove is supported)", args[0])
		}
		return crewMutation(args[1], func(doc *savedit.SaveDocument, charID int) error {
			condID, err := parseInt(args[2], "condition id")
			if err != nil {
				return err
			}
			return doc.RemoveCondition(charID, condID)
		})
	},
}

var (
	relFriendship    string
	relAttraction    string
	relCompatibility string
)

var crewRelationCmd = &cobra.Command{
	Use:   "relation <character-id> <target-id>",
	Short: "Set relationship scores toward another crew member",
	Long: `Set any of the three relationship scores. Omitted flags keep their
current value; a relationship that does not exist yet is created.

Example:
  savedit -f game.sav crew relation 8001 8002 --friendship 10`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return crewMutation(args[0], func(doc *savedit.SaveDocument, charID int) error {
			targetID, err := parseInt(args[1], "target id")
			if err != nil {
				return err
			}
			var u savedit.RelationshipUpdate
			if relFriendship != "" {
				v, err := parseInt(relFriendship, "friendship")
				if err != nil {
					return err
				}
				u.Friendship = &v
			}
			if relAttraction != "" {
				v, err := parseInt(relAttraction, "attraction")
				if err != nil {
					return err
				}
				u.Attraction = &v
			}
			if relCompatibility != "" {
				v, err := parseInt(relCompatibility, "compatibility")
				if err != nil {
					return err
				}
				u.Compatibility = &v
			}
			if u.Friendship == nil && u.Attraction == nil && u.Compatibility == nil {
				return fmt.Errorf("nothing to set: pass --friendship, --attraction or --compatibility")
			}
			return doc.UpdateRelationship(charID, targetID, u)
		})
	},
}

var (
	createSkills string
	createAttrs  string
	createTraits string
)

var crewCreateCmd = &cobra.Command{
	Use:   "create <ship-id> <name>",
	Short: "Create a new crew member on a ship",
	Long: `Create a new crew member. The ship must already have at least one
crew member; its record supplies the structural template for the new one.

Skills and attributes are comma-separated id=value pairs, traits a
comma-separated id list:

  savedit -f game.sav crew create 42 "Ada" --skills 22=8,16=6 --traits 105`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shipID, err := parseInt(args[0], "ship id")
		if err != nil {
			return err
		}
		name := strings.TrimSpace(args[1])
		if name == "" {
			return fmt.Errorf("crew member name must not be empty")
		}
		attrs, err := parsePairs(createAttrs, "attribute")
		if err != nil {
			return err
		}
		skills, err := parsePairs(createSkills, "skill")
		if err != nil {
			return err
		}
		traits, err := parseIDList(createTraits, "trait")
		if err != nil {
			return err
		}

		doc, err := openSave()
		if err != nil {
			return err
		}
		defer func() { _ = doc.Close() }()

		ch, err := doc.CreateCharacter(shipID, name, attrs, skills, traits)
		if err != nil {
			return fmt.Errorf("failed to create crew member: %w", err)
		}
		if err := writeSave(doc); err != nil {
			return err
		}
		fmt.Printf("Created %s (id %d) on ship %d\n", ch.Name, ch.ID, ch.ShipID)
		return nil
	},
}

// crewMutation handles the shared open-mutate-save flow of the crew
// subcommands that target an existing character.
func crewMutation(idArg string, fn func(*savedit.SaveDocument, int) error) error {
	charID, err := parseInt(idArg, "character id")
	if err != nil {
		return err
	}

	doc, err := openSave()
	if err != nil {
		return err
	}
	defer func() { _ = doc.Close() }()

	if doc.Character(charID) == nil {
		return fmt.Errorf("no crew member with id %d", charID)
	}
	if err := fn(doc, charID); err != nil {
		return err
	}
	if err := writeSave(doc); err != nil {
		return err
	}
	fmt.Printf("Crew member %d updated\n", charID)
	return nil
}

// parsePairs turns "id=value,id=value" into named values.
func parsePairs(s, what string) ([]savedit.NamedValue, error) {
	if s == "" {
		return nil, nil
	}
	var out []savedit.NamedValue
	for _, pair := range strings.Split(s, ",") {
		id, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid %s pair %q (use id=value)", what, pair)
		}
		idN, err := parseInt(id, what+" id")
		if err != nil {
			return nil, err
		}
		valueN, err := parseInt(value, what+" value")
		if err != nil {
			return nil, err
		}
		out = append(out, savedit.NamedValue{ID: idN, Value: valueN})
	}
	return out, nil
}

// parseIDList turns "id,id,id" into named values with no value field.
func parseIDList(s, what string) ([]savedit.NamedValue, error) {
	if s == "" {
		return nil, nil
	}
	var out []savedit.NamedValue
	for _, id := range strings.Split(s, ",") {
		idN, err := parseInt(strings.TrimSpace(id), what+" id")
		if err != nil {
			return nil, err
		}
		out = append(out, savedit.NamedValue{ID: idN})
	}
	return out, nil
}

func init() {
	crewMaxCmd.Flags().IntVar(&maxAttrValue, "attributes", 5, "Value for every attribute")
	crewMaxCmd.Flags().IntVar(&maxSkillLevel, "skills", 8, "Level for every skill")
	crewRelationCmd.Flags().StringVar(&relFriendship, "friendship", "", "Friendship score")
	crewRelationCmd.Flags().StringVar(&relAttraction, "attraction", "", "Attraction score")
	crewRelationCmd.Flags().StringVar(&relCompatibility, "compatibility", "", "Compatibility score")
	crewCreateCmd.Flags().StringVar(&createAttrs, "attributes", "", "Comma-separated attribute id=value pairs")
	crewCreateCmd.Flags().StringVar(&createSkills, "skills", "", "Comma-separated skill id=level pairs")
	crewCreateCmd.Flags().StringVar(&createTraits, "traits", "", "Comma-separated trait ids")

	crewCmd.AddCommand(crewAttrCmd)
	crewCmd.AddCommand(crewSkillCmd)
	crewCmd.AddCommand(crewMaxCmd)
	crewCmd.AddCommand(crewTraitCmd)
	crewCmd.AddCommand(crewConditionCmd)
	crewCmd.AddCommand(crewRelationCmd)
	crewCmd.AddCommand(crewCreateCmd)
	rootCmd.AddCommand(crewCmd)
}
