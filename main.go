// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davrk/go-pop3-forward/classifier/scoreapi"
	"github.com/davrk/go-pop3-forward/classifier/spamassassin"
	"github.com/davrk/go-pop3-forward/config"
	"github.com/davrk/go-pop3-forward/domain"
	"github.com/davrk/go-pop3-forward/forward"
	"github.com/davrk/go-pop3-forward/log"
	"github.com/davrk/go-pop3-forward/persistence"
	"github.com/davrk/go-pop3-forward/pop3"
	"github.com/davrk/go-pop3-forward/scheduler"
	"github.com/davrk/go-pop3-forward/smtp"

	"github.com/sirupsen/logrus"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("config.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	if conf.Pop3Settings.CheckCertificateRevocation || conf.SmtpSettings.CheckCertificateRevocation {
		logger.Warn("CheckCertificateRevocation is accepted but has no effect, certificate revocation is not checked")
	}

	dialTimeout := time.Duration(conf.DialTimeoutSeconds) * time.Second

	dialer := pop3.NewDialer(
		conf.Pop3Settings.Host,
		conf.Pop3Settings.Port,
		conf.Pop3Settings.UseSsl,
		conf.Pop3Settings.Username,
		conf.Pop3Settings.Password,
		dialTimeout,
	)

	sender := smtp.NewSender(
		conf.SmtpSettings.Host,
		conf.SmtpSettings.Port,
		conf.SmtpSettings.UseSsl,
		conf.SmtpSettings.Username,
		conf.SmtpSettings.Password,
		dialTimeout,
	)

	var classifier domain.SpamClassifier
	switch {
	case conf.ScoreUrl != "":
		classifier = scoreapi.NewScoreApi(conf.ScoreUrl)
	case conf.SpamassassinHost != "":
		sa, err := spamassassin.NewSpamassassin(conf.SpamassassinHost)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not start spamassassin connector")
		}
		classifier = sa
	default:
		logger.Info("No classifier configured, forwarding everything")
	}

	configs := []forward.ConfigFunc{forward.SpamThreshold(conf.SpamThreshold)}
	if conf.Pop3Settings.DeleteSpam {
		configs = append(configs, forward.DeleteSpam())
	}
	if conf.SubjectPrefix != "" {
		configs = append(configs, forward.SubjectPrefix(conf.SubjectPrefix))
	}

	if conf.Database != "" {
		journal, err := persistence.NewJournal(conf.Database)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not connect to database")
		}
		defer journal.Close()

		configs = append(configs, forward.Journal(journal))
	}

	forwarder, err := forward.NewForwarder(dialer, sender, classifier, conf.SmtpSettings.ForwardTo, conf.SmtpSettings.SenderName, configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start forwarder")
	}

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.WithField("signal", sig).Info("Shutting down after current cycle")
		cancel()
	}()

	logger.WithFields(logrus.Fields{
		"forwardto":    conf.SmtpSettings.ForwardTo,
		"interval":     conf.IntervalSeconds,
		"spamchecking": conf.SpamCheckEnabled(),
	}).Info("Starting forward loop")

	s := scheduler.NewScheduler(
		forwarder,
		time.Duration(conf.IntervalSeconds)*time.Second,
		time.Duration(conf.MaxBackoffSeconds)*time.Second,
	)
	s.Run(ctx)
}
