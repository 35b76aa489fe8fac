package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/calendar"
	"github.com/ShivamGupta987/Google-Calendar/internal/client"
	"github.com/ShivamGupta987/Google-Calendar/internal/planner"
	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "planner",
		Usage: "Terminal client for the week-planner calendar API.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Value:   "http://localhost:5000/api",
				Usage:   "Base URL of the calendar API.",
				EnvVars: []string{"API_URL"},
			},
		},
		Commands: []*cli.Command{
			weekCommand(),
			eventsCommand(),
			goalsCommand(),
			tasksCommand(),
			scheduleCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCache(c *cli.Context) (*client.Cache, error) {
	logger, err := internal.NewLogger("development", "info")
	if err != nil {
		return nil, err
	}
	api := client.New(c.String("api"), logger)
	return client.NewCache(api, client.LogNotifier{Logger: logger}), nil
}

func weekCommand() *cli.Command {
	return &cli.Command{
		Name:  "week",
		Usage: "Render the week grid.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "Any day inside the week to show (YYYY-MM-DD), default today."},
		},
		Action: func(c *cli.Context) error {
			cache, err := newCache(c)
			if err != nil {
				return err
			}

			anchor := time.Now()
			if d := c.String("date"); d != "" {
				anchor, err = time.Parse("2006-01-02", d)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			events, err := cache.Events(c.Context)
			if err != nil {
				return err
			}
			calendar.RenderWeek(os.Stdout, events, anchor)
			return nil
		},
	}
}

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "List, create and delete calendar events.",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					cache, err := newCache(c)
					if err != nil {
						return err
					}
					events, err := cache.Events(c.Context)
					if err != nil {
						return err
					}
					for _, e := range events {
						fmt.Printf("%s  %-10s %s  %s -> %s\n", e.ID, e.Category, calendar.DisplayTitle(e), e.StartTime, e.EndTime)
					}
					return nil
				},
			},
			{
				Name: "create",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "category", Value: "work"},
					&cli.StringFlag{Name: "start", Required: true, Usage: "ISO-8601 start time."},
					&cli.StringFlag{Name: "end", Required: true, Usage: "ISO-8601 end time."},
				},
				Action: func(c *cli.Context) error {
					cache, err := newCache(c)
					if err != nil {
						return err
					}
					event, err := cache.CreateEvent(c.Context, &service.EventRequest{
						Title:     c.String("title"),
						Category:  c.String("category"),
						StartTime: c.String("start"),
						EndTime:   c.String("end"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Created event %s\n", event.ID)
					return nil
				},
			},
			{
				Name:      "delete",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("usage: events delete <id>")
					}
					cache, err := newCache(c)
					if err != nil {
						return err
					}
					if err := cache.DeleteEvent(c.Context, c.Args().First()); err != nil {
						return err
					}
					fmt.Println("Event removed")
					return nil
				},
			},
		},
	}
}

func goalsCommand() *cli.Command {
	return &cli.Command{
		Name:  "goals",
		Usage: "List and create goals.",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					cache, err := newCache(c)
					if err != nil {
						return err
					}
					goals, err := cache.Goals(c.Context)
					if err != nil {
						return err
					}
					for _, g := range goals {
						fmt.Printf("%s  %s (%s)\n", g.ID, g.Title, g.Color)
					}
					return nil
				},
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "color", Required: true},
				},
				Action: func(c *cli.Context) error {
					cache, err := newCache(c)
					if err != nil {
						return err
					}
					goal, err := cache.CreateGoal(c.Context, &service.GoalRequest{
						Title: c.String("title"),
						Color: c.String("color"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Created goal %s\n", goal.ID)
					return nil
				},
			},
		},
	}
}

func tasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "List, create and complete tasks.",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{&cli.StringFlag{Name: "goal", Usage: "Only tasks of this goal."}},
				Action: func(c *cli.Context) error {
					cache, err := newCache(c)
					if err != nil {
						return err
					}
					tasks, err := cache.Tasks(c.Context)
					if err != nil {
						return err
					}
					goalID := c.String("goal")
					for _, t := range tasks {
						if goalID != "" && t.GoalID != goalID {
							continue
						}
						mark := " "
						if t.Completed {
							mark = "x"
						}
						fmt.Printf("[%s] %s  %s (%s)\n", mark, t.ID, t.Title, t.GoalTitle)
					}
					return nil
				},
			},
			{
				Name: "add",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "goal", Required: true, Usage: "Goal id the task belongs to."},
				},
				Action: func(c *cli.Context) error {
					cache, err := newCache(c)
					if err != nil {
						return err
					}
					task, err := cache.CreateTask(c.Context, &service.TaskRequest{
						Title:  c.String("title"),
						GoalID: c.String("goal"),
					})
					if err != nil {
						return err
					}
					fmt.Printf("Created task %s\n", task.ID)
					return nil
				},
			},
			{
				Name:      "done",
				ArgsUsage: "<id>",
				Action:    setTaskCompleted(true),
			},
			{
				Name:      "reopen",
				ArgsUsage: "<id>",
				Action:    setTaskCompleted(false),
			},
		},
	}
}

func setTaskCompleted(completed bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("usage: tasks done|reopen <id>")
		}
		cache, err := newCache(c)
		if err != nil {
			return err
		}
		task, err := cache.UpdateTask(c.Context, c.Args().First(), &service.TaskUpdate{Completed: &completed})
		if err != nil {
			return err
		}
		fmt.Printf("Task %s completed=%v\n", task.ID, task.Completed)
		return nil
	}
}

func scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:      "schedule",
		Usage:     "Drop a task onto a calendar slot, creating a one-hour event.",
		ArgsUsage: "<taskID>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "day", Required: true, Usage: "Target day (YYYY-MM-DD)."},
			&cli.IntFlag{Name: "hour", Required: true, Usage: "Target hour (0-23)."},
			&cli.StringFlag{Name: "goal", Usage: "Active goal filter; seeds category and color."},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: schedule <taskID> --day ... --hour ...")
			}
			cache, err := newCache(c)
			if err != nil {
				return err
			}

			day, err := time.Parse("2006-01-02", c.String("day"))
			if err != nil {
				return fmt.Errorf("invalid --day: %w", err)
			}

			tasks, err := cache.Tasks(c.Context)
			if err != nil {
				return err
			}
			var task *internal.Task
			for i := range tasks {
				if tasks[i].ID == c.Args().First() {
					task = &tasks[i]
					break
				}
			}
			if task == nil {
				return fmt.Errorf("task %s not found", c.Args().First())
			}

			var activeGoal *internal.Goal
			if goalID := c.String("goal"); goalID != "" {
				detail, err := client.New(c.String("api"), internal.NewNopLogger()).GetGoal(c.Context, goalID)
				if err != nil {
					return err
				}
				activeGoal = &detail.Goal
			}

			draft := planner.ScheduleTask(*task, day, c.Int("hour"), activeGoal)
			event, err := cache.CreateEvent(c.Context, draft.Request())
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %q as event %s (%s -> %s)\n", task.Title, event.ID, event.StartTime, event.EndTime)
			return nil
		},
	}
}
