package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentwheels-dev/rentwheels/internal/cli/client"
)

// reviewForm is validated before submission; ratings are 1-5 stars.
type reviewForm struct {
	Rating  int    `validate:"required,min=1,max=5"`
	Comment string `validate:"required"`
}

// NewReviewsCmd creates the reviews command tree
func NewReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews <vehicle-id>",
		Short: "Show a vehicle's reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicleReviews(args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "my",
		Short: "List your reviews and their approval status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMyReviews()
		},
	})

	var rating int
	var comment string
	add := &cobra.Command{
		Use:   "add <vehicle-id>",
		Short: "Review a vehicle you rented",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddReview(args[0], rating, comment)
		},
	}
	add.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 5")
	add.Flags().StringVar(&comment, "comment", "", "Review text")

	cmd.AddCommand(add)
	return cmd
}

func runVehicleReviews(vehicleID string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}

	reviews, err := d.api.VehicleReviews(vehicleID)
	if err != nil {
		return err
	}

	if len(reviews) == 0 {
		fmt.Fprintln(d.out, "No reviews for this vehicle yet.")
		return nil
	}

	for _, r := range reviews {
		fmt.Fprintf(d.out, "%s %s — %s\n", stars(r.Rating), r.User.Name, r.Comment)
	}
	return nil
}

func runMyReviews(opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()
	return d.renderMyReviews()
}

func runAddReview(vehicleID string, rating int, comment string, opts ...Option) error {
	d, err := newDeps(opts...)
	if err != nil {
		return err
	}
	d.notifySessionEndOnce()

	form := reviewForm{Rating: rating, Comment: comment}
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("invalid review (--rating 1-5 and --comment are required): %w", err)
	}

	if err := d.api.SubmitReview(client.SubmitReviewRequest{
		VehicleID: vehicleID,
		Rating:    rating,
		Comment:   comment,
	}); err != nil {
		return err
	}

	fmt.Fprintln(d.out, "✓ Review submitted. It will appear once an admin approves it.")
	return nil
}
