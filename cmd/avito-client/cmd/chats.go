package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/avito-client/internal/avito"
)

func chatsCommand() *cobra.Command {
	chatsRoot := &cobra.Command{
		Use:   "chats",
		Short: "Read and answer messenger chats",
	}

	chatsRoot.AddCommand(
		chatsListCmd(),
		chatsMessagesCmd(),
		chatsSendCmd(),
		chatsSendImageCmd(),
		chatsReadCmd(),
		chatsDeleteCmd(),
		chatsBlacklistCmd(),
	)

	return chatsRoot
}

func chatsListCmd() *cobra.Command {
	var (
		unread  bool
		itemIDs []int64
		types   string
		limit   int
		offset  int
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List chats",
		Example: `  avito-client chats list --unread
  avito-client chats list --item-ids 12345,67890 --limit 20`,
		Args: cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			me, err := s.client.SelfInfo(cmd.Context())
			if err != nil {
				return err
			}

			m := me.Chats()
			m.UnreadOnly = unread
			m.ItemIDs = itemIDs
			m.ChatTypes = types
			m.Limit = limit
			m.Offset = offset

			chats, err := avito.Send(cmd.Context(), m)
			if err != nil {
				return fmt.Errorf("listing chats: %w", err)
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), chats.Chats)
			}
			if len(chats.Chats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No chats found.")
				return nil
			}
			return printChats(cmd.OutOrStdout(), chats.Chats, me.ID)
		}),
	}
	listCmd.Flags().BoolVar(&unread, "unread", false, "only chats with unread messages")
	listCmd.Flags().Int64SliceVar(&itemIDs, "item-ids", nil, "only chats about these listings")
	listCmd.Flags().StringVar(&types, "types", "", "chat types to include (u2i, u2u)")
	listCmd.Flags().IntVar(&limit, "limit", 0, "maximum number of chats")
	listCmd.Flags().IntVar(&offset, "offset", 0, "number of chats to skip")

	return listCmd
}

func chatsMessagesCmd() *cobra.Command {
	var limit, offset int

	messagesCmd := &cobra.Command{
		Use:   "messages <chat_id>",
		Short: "List messages in a chat",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			me, err := s.client.SelfInfo(cmd.Context())
			if err != nil {
				return err
			}
			msgs, err := avito.Call(cmd.Context(), s.client, avito.GetMessages{
				UserID: me.ID,
				ChatID: args[0],
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				return fmt.Errorf("listing messages: %w", err)
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), msgs.Messages)
			}
			if len(msgs.Messages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No messages found.")
				return nil
			}
			return printMessages(cmd.OutOrStdout(), msgs.Messages)
		}),
	}
	messagesCmd.Flags().IntVar(&limit, "limit", 0, "maximum number of messages")
	messagesCmd.Flags().IntVar(&offset, "offset", 0, "number of messages to skip")

	return messagesCmd
}

func chatsSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "send <chat_id> <text>",
		Short:   "Send a text message",
		Example: `  avito-client chats send u2i-abc123 "Still available, come by after 6"`,
		Args:    cobra.ExactArgs(2),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			me, err := s.client.SelfInfo(cmd.Context())
			if err != nil {
				return err
			}
			msg, err := avito.Call(cmd.Context(), s.client, avito.SendMessage{
				UserID:  me.ID,
				ChatID:  args[0],
				Message: avito.MessageToSend{Text: args[1]},
			})
			if err != nil {
				return fmt.Errorf("sending message: %w", err)
			}
			return reportSent(cmd, &msg)
		}),
	}
}

func chatsSendImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send-image <chat_id> <path>",
		Short: "Upload an image and send it to a chat",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			msg, err := s.client.SendImage(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return reportSent(cmd, msg)
		}),
	}
}

func reportSent(cmd *cobra.Command, msg *avito.Message) error {
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), msg)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sent message %s.\n", msg.ID)
	return nil
}

func chatsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <chat_id>",
		Short: "Mark a chat as read",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			me, err := s.client.SelfInfo(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := avito.Call(cmd.Context(), s.client, avito.ChatRead{UserID: me.ID, ChatID: args[0]})
			if err != nil {
				return fmt.Errorf("marking chat read: %w", err)
			}
			return reportOK(cmd, &ok, "Chat %s marked read.\n", args[0])
		}),
	}
}

func chatsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <chat_id> <message_id>",
		Short: "Delete one of the account's messages",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			me, err := s.client.SelfInfo(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := avito.Call(cmd.Context(), s.client, avito.DeleteMessage{
				UserID:    me.ID,
				ChatID:    args[0],
				MessageID: args[1],
			})
			if err != nil {
				return fmt.Errorf("deleting message: %w", err)
			}
			return reportOK(cmd, &ok, "Message %s deleted.\n", args[1])
		}),
	}
}

func chatsBlacklistCmd() *cobra.Command {
	var (
		itemID int64
		reason int
	)

	blacklistCmd := &cobra.Command{
		Use:   "blacklist <user_id>",
		Short: "Block a user from messaging the account",
		Long: "Block a user from messaging the account. Reasons: 1 spam, 2 fraud,\n" +
			"3 abuse, 4 other.",
		Args: cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}
			if reason < int(avito.ReasonSpam) || reason > int(avito.ReasonOther) {
				return fmt.Errorf("--reason must be between %d and %d", avito.ReasonSpam, avito.ReasonOther)
			}
			me, err := s.client.SelfInfo(cmd.Context())
			if err != nil {
				return err
			}
			ok, err := avito.Call(cmd.Context(), s.client, avito.AddToBlacklist{
				UserID: me.ID,
				Users: []avito.BlacklistUser{{
					Context: avito.BlacklistContext{ItemID: itemID, ReasonID: avito.Reason(reason)},
					UserID:  userID,
				}},
			})
			if err != nil {
				return fmt.Errorf("blacklisting user: %w", err)
			}
			return reportOK(cmd, &ok, "User %d blacklisted.\n", userID)
		}),
	}
	blacklistCmd.Flags().Int64Var(&itemID, "item-id", 0, "listing the user contacted you about")
	blacklistCmd.Flags().IntVar(&reason, "reason", int(avito.ReasonSpam), "blacklist reason id")

	return blacklistCmd
}

func reportOK(cmd *cobra.Command, ok *avito.OKResponse, format string, args ...any) error {
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), ok)
	}
	if !ok.OK {
		return errors.New("avito returned ok=false")
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	return nil
}
