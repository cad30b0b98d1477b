package cli

import (
	"errors"
	"grid-route-client/internal/api/dto"
	"grid-route-client/internal/domain"
	"grid-route-client/internal/services"

	"github.com/spf13/cobra"
)

func (c *CLI) snapCommand() *cobra.Command {
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Resolve a coordinate to the nearest network node",
		Example: `  routectl snap --lat 40.7 --lng -74.0
  routectl snap --lat 53.55 --lng 9.99 --base-url http://backend:9090/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}

			node, err := client.Snap(cmd.Context(), domain.Coordinate{Lat: lat, Lng: lng})
			if err != nil {
				return err
			}
			return c.printJSON(dto.NewGridNodeResponse(node))
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func (c *CLI) routeCommand() *cobra.Command {
	var source, target int64

	cmd := &cobra.Command{
		Use:     "route",
		Short:   "Fetch the shortest path between two node ids",
		Example: `  routectl route --source 42 --target 1337`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.newClient()
			if err != nil {
				return err
			}

			path, err := client.ShortestPath(cmd.Context(), source, target)
			if err != nil {
				return err
			}
			c.Logger.Debug("path", "vertices", len(path.Coordinates), "distance", path.Distance)
			return c.printJSON(dto.NewPathResponse(path))
		},
	}

	cmd.Flags().Int64Var(&source, "source", 0, "source node id")
	cmd.Flags().Int64Var(&target, "target", 0, "target node id")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func (c *CLI) journeyCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     "journey",
		Short:   "Snap two coordinates and fetch the path between them",
		Example: `  routectl journey --from 40.70,-74.00 --to 40.75,-73.98`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromCoord, err := domain.ParseCoordinate(from)
			if err != nil {
				return errors.New("--from: " + err.Error())
			}
			toCoord, err := domain.ParseCoordinate(to)
			if err != nil {
				return errors.New("--to: " + err.Error())
			}

			client, err := c.newClient()
			if err != nil {
				return err
			}

			j, err := services.ResolveRoute(cmd.Context(), client, fromCoord, toCoord)
			if err != nil {
				return err
			}
			return c.printJSON(dto.NewJourneyResponse(j))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin as lat,lng")
	cmd.Flags().StringVar(&to, "to", "", "destination as lat,lng")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
